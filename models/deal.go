package models

import "time"

type Deal struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Title      string     `json:"title" gorm:"not null"`
	Value      float64    `json:"value" gorm:"not null"`
	Stage      string     `json:"stage"` // prospect, negotiation, proposal, won, lost
	CloseDate  *time.Time `json:"-"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	CustomerID uint       `json:"customer_id" gorm:"not null;index"`
	UserID     uint       `json:"-" gorm:"not null;index"`
}

// DealView is a Deal row enriched with its parent customer's name.
type DealView struct {
	Deal
	CustomerName string `json:"customer_name"`
}

type DealRequest struct {
	Title      string  `json:"title" binding:"required"`
	Value      float64 `json:"value" binding:"required"`
	CustomerID uint    `json:"customer_id" binding:"required"`
	Stage      string  `json:"stage"`
	CloseDate  string  `json:"close_date"` // YYYY-MM-DD, optional
	Notes      string  `json:"notes"`
}

type DealUpdate struct {
	Title      *string  `json:"title"`
	Value      *float64 `json:"value"`
	Stage      *string  `json:"stage"`
	CloseDate  *string  `json:"close_date"`
	Notes      *string  `json:"notes"`
	CustomerID *uint    `json:"customer_id"`
}
