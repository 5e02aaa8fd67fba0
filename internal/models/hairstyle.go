package models

import "time"

type Hairstyle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	ImageURL string `gorm:"size:500;not null" json:"image_url"`
	ImageKey string `gorm:"size:100" json:"-"`

	Price       float64 `json:"price"`
	Category    string  `gorm:"size:50" json:"category"`
	Description string  `gorm:"size:500" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
