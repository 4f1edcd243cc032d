package models

import "time"

// Dish belongs to a shop. Rate is recomputed from its comments.
type Dish struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID      uint      `gorm:"not null;index" json:"shopId"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64     `gorm:"not null;default:0" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Picture     string    `gorm:"type:varchar(512);default:''" json:"picture"`
	Rate        float64   `gorm:"type:decimal(2,1);not null;default:0" json:"rate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Shop     Shop      `gorm:"foreignKey:ShopID" json:"-"`
	Comments []Comment `gorm:"foreignKey:DishID" json:"-"`
}
