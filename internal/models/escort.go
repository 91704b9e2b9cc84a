package models

import "time"

type EscortBooking struct {
	ID                  int64     `json:"id"`
	BookingID           string    `json:"booking_id"`
	UserID              *int64    `json:"user_id"`
	FullName            *string   `json:"full_name"`
	ContactNumber       *string   `json:"contact_number"`
	EmailID             *string   `json:"email_id"`
	EscortServiceType   *string   `json:"escort_service_type"`
	VIPServiceType      *string   `json:"vip_service_type"`
	RequestDate         *string   `json:"request_date"`
	RequestTime         *string   `json:"request_time"`
	StartDate           *string   `json:"start_date"`
	EndDate             *string   `json:"end_date"`
	StartTime           *string   `json:"start_time"`
	EndTime             *string   `json:"end_time"`
	Location            *string   `json:"location"`
	PrimaryLocation     *string   `json:"primary_location"`
	SpecialRequests     *string   `json:"special_requests"`
	AdditionalNotes     *string   `json:"additional_notes"`
	AdditionalLocations int       `json:"additional_locations"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
