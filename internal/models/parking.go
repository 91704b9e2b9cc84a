package models

import "time"

type ParkingBooking struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	BookingCode   *string    `json:"booking_code"`
	CustomerName  *string    `json:"customer_name"`
	ParkingID     *int64     `json:"parking_id"`
	ParkingName   *string    `json:"parking_name"`
	MarinaName    *string    `json:"marina_name"`
	LocationName  *string    `json:"location_name"`
	FullAddress   *string    `json:"full_address"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	StartTime     *string    `json:"start_time"`
	EndTime       *string    `json:"end_time"`
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	DurationHours *int       `json:"duration_hours"`
	TotalAmount   *float64   `json:"total_amount"`
	Currency      string     `json:"currency"`
	PaymentStatus *string    `json:"payment_status"`
	TransactionID *string    `json:"transaction_id"`
	BookingStatus string     `json:"booking_status"`
	Notes         *string    `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ParkingPlace is a bookable berth or dry-stack slot in a marina.
type ParkingPlace struct {
	ID               int64     `json:"id"`
	ParkingName      *string   `json:"parking_name"`
	MarinaName       *string   `json:"marina_name"`
	Status           *string   `json:"status"`
	ShortDescription *string   `json:"short_description"`
	ParkingType      *string   `json:"parking_type"`
	LocationName     *string   `json:"location_name"`
	FullAddress      *string   `json:"full_address"`
	TotalSpots       *int      `json:"total_spots"`
	MaxBoatLength    *string   `json:"max_boat_length"`
	PricingModel     *string   `json:"pricing_model"`
	BasePrice        *float64  `json:"base_price"`
	Currency         *string   `json:"currency"`
	MinimumBooking   *string   `json:"minimum_booking"`
	Amenities        *string   `json:"amenities"`
	PolicyNotes      *string   `json:"policy_notes"`
	CoverImage       *string   `json:"cover_image"`
	GalleryImages    *string   `json:"gallery_images"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
