package models

import "time"

// ScheduleSlot is one lesson occurrence fixed to a weekday and time range.
// DayOfWeek runs 1..7 with Monday = 1. Times are fixed-width HH:MM strings,
// so lexical comparison matches chronological order.
type ScheduleSlot struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	SubjectID string    `gorm:"type:varchar(50);index" json:"subject_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `gorm:"type:varchar(5)" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5)" json:"end_time"`
	Room      string    `gorm:"type:varchar(32)" json:"room"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}
