package models

import "time"

type Chalet struct {
	ID            int64     `json:"id"`
	Name          *string   `json:"name"`
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Address       *string   `json:"address"`
	PricePerNight *float64  `json:"price_per_night"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	MaxGuests     *int      `json:"max_guests"`
	ImageURL      *string   `json:"image_url"`
	AmenitiesJSON *string   `json:"amenities_json"`
	Status        *string   `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChaletBooking struct {
	ID            int64     `json:"id"`
	ChaletID      int64     `json:"chalet_id"`
	CustomerID    *int64    `json:"customer_id"`
	CheckInDate   *string   `json:"check_in_date"`
	CheckOutDate  *string   `json:"check_out_date"`
	GuestName     *string   `json:"guest_name"`
	ContactNumber *string   `json:"contact_number"`
	EmailID       *string   `json:"email_id"`
	TotalAmount   *float64  `json:"total_amount"`
	BookingStatus string    `json:"booking_status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
