package models

import "time"

// Shop is a restaurant listed on the platform. Rate is recomputed from its dishes.
type Shop struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Type        int       `gorm:"not null" json:"type"`
	DishesCount int       `gorm:"not null;default:0" json:"dishesCount"`
	Rate        float64   `gorm:"type:decimal(2,1);not null;default:0" json:"rate"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Dishes []Dish `gorm:"foreignKey:ShopID" json:"-"`
}
