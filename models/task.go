package models

import "time"

type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	RelatedType string    `json:"related_type"` // customer, contact, deal or empty
	RelatedID   *uint     `json:"related_id"`
	DueDate     time.Time `json:"-" gorm:"not null"`
	Priority    string    `json:"priority"` // low, medium, high
	Status      string    `json:"status"`   // pending, in_progress, completed
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `json:"-" gorm:"not null;index"`
}

// TaskView is a Task row enriched with the display name of its related
// entity, resolved per related_type.
type TaskView struct {
	Task
	RelatedName string `json:"related_name"`
}

type TaskRequest struct {
	Title       string `json:"title" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"` // YYYY-MM-DD
	RelatedType string `json:"related_type"`
	RelatedID   *uint  `json:"related_id"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// TaskUpdate carries a partial update. When either side of the related pair
// is supplied the pair is merged with the stored values and re-validated;
// a supplied related_id of 0 drops the association.
type TaskUpdate struct {
	Title       *string `json:"title"`
	RelatedType *string `json:"related_type"`
	RelatedID   *uint   `json:"related_id"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}
