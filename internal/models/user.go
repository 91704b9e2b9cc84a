package models

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash []byte
	Gender       *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
