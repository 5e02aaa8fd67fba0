package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null;index" json:"customer_email"`

	Date string `gorm:"size:10;not null;index:idx_slot" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null;index:idx_slot" json:"time"`  // HH:MM

	Hairstyle string `gorm:"size:100;default:'Not specified'" json:"hairstyle"`

	Status             string `gorm:"size:20;default:'pending'" json:"status"`
	ConfirmationNumber string `gorm:"size:12;uniqueIndex" json:"confirmation_number"`

	ReviewRating *int       `json:"review_rating,omitempty"`
	ReviewText   *string    `gorm:"size:1000" json:"review_text,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) HasReview() bool {
	return a.ReviewRating != nil
}
