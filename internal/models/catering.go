package models

import "time"

type Caterer struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	Address   *string   `json:"address"`
	ImageURL  *string   `json:"image_url"`
	Rating    *string   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CatererMenuItem struct {
	ID              int64     `json:"id"`
	CatererID       int64     `json:"caterer_id"`
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	PreparationMins *int      `json:"preparation_mins"`
	Price           *float64  `json:"price"`
	ImageURL        *string   `json:"image_url"`
	SortOrder       *int      `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CateringOrder struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	CatererID      int64     `json:"caterer_id"`
	AddressID      *int64    `json:"address_id"`
	NoOfPersons    *int      `json:"no_of_persons"`
	Status         string    `json:"status"`
	Subtotal       *float64  `json:"subtotal"`
	DiscountAmount *float64  `json:"discount_amount"`
	CouponCode     *string   `json:"coupon_code"`
	Total          *float64  `json:"total"`
	PaymentMethod  *string   `json:"payment_method"`
	PaymentStatus  string    `json:"payment_status"`
	TransactionID  *string   `json:"transaction_id"`
	Queries        *string   `json:"queries"`
	ItemsOrdered   *string   `json:"items_ordered"`
	CreatedAt      time.Time `json:"created_at"`
}
