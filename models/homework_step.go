package models

import "time"

// HomeworkStep is one ordered item of a homework breakdown.
type HomeworkStep struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	HomeworkID  string    `gorm:"type:varchar(50);index" json:"homework_id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
	Order       int       `gorm:"column:step_order" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}
