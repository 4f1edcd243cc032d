package models

import (
	"gorm.io/gorm"
)

const RoleAdmin = "ADMIN"

// User is an administrator allowed to manage shops and dishes.
type User struct {
	gorm.Model
	Name     string `gorm:"default:''" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'ADMIN'" json:"role"`
}
