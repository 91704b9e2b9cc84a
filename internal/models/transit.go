package models

import "time"

type TransitVehicle struct {
	ID          int64     `json:"id"`
	Brand       *string   `json:"brand"`
	Model       *string   `json:"model"`
	Seats       *int      `json:"seats"`
	PricePerDay *float64  `json:"price_per_day"`
	ImageURL    *string   `json:"image_url"`
	Status      *string   `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransitTripBooking struct {
	ID                  int64     `json:"id"`
	TripID              string    `json:"trip_id"`
	UserID              *int64    `json:"user_id"`
	Brand               *string   `json:"brand"`
	Model               *string   `json:"model"`
	PassengerName       *string   `json:"passenger_name"`
	ContactNumber       *string   `json:"contact_number"`
	EmailID             *string   `json:"email_id"`
	PickupAddress       *string   `json:"pickup_address"`
	DropAddress         *string   `json:"drop_address"`
	TripDate            *string   `json:"trip_date"`
	TripTime            *string   `json:"trip_time"`
	DriverDetails       *string   `json:"driver_details"`
	DriverContactNumber *string   `json:"driver_contact_number"`
	Fare                *float64  `json:"fare"`
	PaymentMethod       *string   `json:"payment_method"`
	PaymentStatus       string    `json:"payment_status"`
	TripStatus          string    `json:"trip_status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
