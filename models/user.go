package models

import "time"

type User struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Carts     []Cart    `gorm:"foreignKey:UserID" json:"carts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
