package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Company   string    `json:"company" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"` // new, contacted, qualified, ...
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"-" gorm:"not null;index"`
}

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

// CustomerUpdate carries a partial update. A nil field is left untouched.
// For phone and notes a non-nil empty string clears the stored value, while
// the remaining fields ignore empty strings so a blank input never wipes a
// required column.
type CustomerUpdate struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}
