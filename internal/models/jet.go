package models

import "time"

type Jet struct {
	ID                int64     `json:"id"`
	Manufacturer      *string   `json:"manufacturer"`
	Model             *string   `json:"model"`
	PassengerCapacity *int      `json:"passenger_capacity"`
	RangeKm           *int      `json:"range_km"`
	CruiseSpeedKmh    *int      `json:"cruise_speed_kmh"`
	PricePerHour      *string   `json:"price_per_hour"`
	PricePerTrip      *string   `json:"price_per_trip"`
	Description       *string   `json:"description"`
	Images            *string   `json:"images"`
	JetType           *string   `json:"jet_type"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type JetBooking struct {
	ID            int64     `json:"id"`
	BookingID     string    `json:"booking_id"`
	UserID        *int64    `json:"user_id"`
	JetID         *int64    `json:"jet_id"`
	Manufacturer  *string   `json:"manufacturer"`
	Model         *string   `json:"model"`
	PassengerName *string   `json:"passenger_name"`
	ContactNumber *string   `json:"contact_number"`
	EmailID       *string   `json:"email_id"`
	Departure     *string   `json:"departure"`
	Destination   *string   `json:"destination"`
	TripDate      *string   `json:"trip_date"`
	TripTime      *string   `json:"trip_time"`
	ReturnDate    *string   `json:"return_date"`
	ReturnTime    *string   `json:"return_time"`
	Passengers    *string   `json:"passengers"`
	JetType       *string   `json:"jet_type"`
	Fare          *float64  `json:"fare"`
	PaymentMethod *string   `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	BookingStatus string    `json:"booking_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
