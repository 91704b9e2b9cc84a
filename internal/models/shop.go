package models

import "time"

type ShopItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     *string `json:"image_url"`
	CategoryName string  `json:"category_name"`
}

type ShopOrder struct {
	ID        int64           `json:"id"`
	UserID    *int64          `json:"user_id"`
	Total     float64         `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []ShopOrderItem `json:"items,omitempty"`
}

type ShopOrderItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ItemID      int64   `json:"item_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}
