package models

import "time"

// Boat is a catalog entry. Amenities holds a JSON array as stored;
// PrimaryImageURL may hold a single URL, a JSON array of URLs, or a
// comma-separated list.
type Boat struct {
	ID                   int64     `json:"id"`
	BoatName             *string   `json:"boat_name"`
	VendorName           *string   `json:"vendor_name"`
	CategoryName         *string   `json:"category_name"`
	SubCategoryName      *string   `json:"sub_category_name"`
	Status               *string   `json:"status"`
	Capacity             *int      `json:"capacity"`
	PricePerHour         *float64  `json:"price_per_hour"`
	PricePerHourCurrency *string   `json:"price_per_hour_currency"`
	PricePerDay          *float64  `json:"price_per_day"`
	PricePerDayCurrency  *string   `json:"price_per_day_currency"`
	PrimaryImageURL      *string   `json:"primary_image_url"`
	Lat                  *float64  `json:"lat"`
	Long                 *float64  `json:"long"`
	LengthMeters         *float64  `json:"length_meters"`
	YearBuilt            *int      `json:"year_built"`
	Description          *string   `json:"description"`
	Amenities            *string   `json:"amenities"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BoatCategory struct {
	ID           int64     `json:"id"`
	CategoryName *string   `json:"category_name"`
	Image        *string   `json:"image"`
	Status       *string   `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BoatBooking mirrors the boat_booking_transactions table. Date and time
// columns are text on purpose: malformed client input is persisted as
// sent rather than rejected.
type BoatBooking struct {
	ID               int64    `json:"id"`
	OrderID          *string  `json:"order_id"`
	BoatID           int64    `json:"boat_id"`
	BoatName         *string  `json:"boat_name"`
	BoatImageURL     *string  `json:"boat_image_url"`
	BoatAddress      *string  `json:"boat_address"`
	CustomerID       *int64   `json:"customer_id"`
	CustomerName     *string  `json:"customer_name"`
	CustomerContact  *string  `json:"customer_contact"`
	CustomerEmail    *string  `json:"customer_email"`
	BookingDate      string   `json:"booking_date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	CaptainName      *string  `json:"captain_name"`
	CaptainImageURL  *string  `json:"captain_image_url"`
	DestinationName  *string  `json:"destination_name"`
	DestinationPrice *float64 `json:"destination_price"`
	DestinationTime  *string  `json:"destination_time"`
	PickUpAddress    *string  `json:"pick_up_address"`
	Subtotal         *float64 `json:"subtotal"`
	DiscountAmount   float64  `json:"discount_amount"`
	CouponCode       *string  `json:"coupon_code"`
	TotalAmount      *float64 `json:"total_amount"`
	PricePerHour     *string  `json:"price_per_hour"`
	TransactionType  *string  `json:"transaction_type"`
	TransactionID    *string  `json:"transaction_id"`
	PaymentStatus    *string  `json:"payment_status"`
	ItemsJSON        *string  `json:"items_json"`
	BookingStatus    string   `json:"booking_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
