package models

import "time"

// Reminder points at a homework and a moment to remind about it. The cron
// dispatcher flips IsSent once remind_at has passed.
type Reminder struct {
	ID         string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(50);index" json:"user_id"`
	HomeworkID string    `gorm:"type:varchar(50);index" json:"homework_id"`
	RemindAt   time.Time `json:"remind_at"`
	IsSent     bool      `gorm:"default:false" json:"is_sent"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Homework *Homework `gorm:"foreignKey:HomeworkID" json:"homework,omitempty"`
}
