package models

import "time"

type Notification struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id"`
	Title     string    `json:"title"`
	Body      *string   `json:"body"`
	Type      *string   `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
