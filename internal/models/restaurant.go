package models

import "time"

// Restaurant keeps its own copy of the owner's email. Ownership is
// validated against the user service at creation time, not held as a
// foreign-key constraint.
type Restaurant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`

	OwnerID    uint   `gorm:"index" json:"owner_id"`
	OwnerEmail string `gorm:"size:100;index" json:"owner_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
