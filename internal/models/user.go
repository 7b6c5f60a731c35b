package models

import "time"

// Role defines the allowed user roles.
type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
	RoleAdmin           Role = "ADMIN"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Fullname string `gorm:"size:100;not null" json:"fullname"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     Role   `gorm:"size:30;default:'CUSTOMER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
