package models

import "time"

// Institution defines the institution model based on the 'institutions' table
type Institution struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Code         string    `json:"code" db:"code"`
	Address      string    `json:"address" db:"address"`
	ContactEmail string    `json:"contactEmail" db:"contact_email"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
