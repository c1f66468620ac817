package models

import "time"

type Contact struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Position   string    `json:"position"`
	Email      string    `json:"email" gorm:"not null"`
	Phone      string    `json:"phone"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	UserID     uint      `json:"-" gorm:"not null;index"`
}

// ContactView is a Contact row enriched with its parent customer's name.
type ContactView struct {
	Contact
	CustomerName string `json:"customer_name"`
}

type ContactRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

type ContactUpdate struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Notes      *string `json:"notes"`
	CustomerID *uint   `json:"customer_id"`
}
