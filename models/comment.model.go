package models

import "time"

// Comment is a user's rating of a dish. User fields are denormalized copies, not a foreign key.
type Comment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	UserName   string    `gorm:"type:varchar(255);not null" json:"userName"`
	UserAvatar string    `gorm:"type:varchar(512);not null" json:"userAvatar"`
	DishID     uint      `gorm:"not null;index" json:"dishId"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	Rate       float64   `gorm:"type:decimal(2,1);not null;default:0" json:"rate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
