package models

import "time"

// Mood levels a student can attach to a finished homework.
const (
	MoodEasy   = "easy"
	MoodNormal = "normal"
	MoodHard   = "hard"
)

// MoodEntry is one difficulty rating for a homework.
type MoodEntry struct {
	ID         string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(50);index" json:"user_id"`
	HomeworkID string    `gorm:"type:varchar(50);index" json:"homework_id"`
	Date       time.Time `json:"date"`
	Mood       string    `gorm:"type:varchar(10)" json:"mood"`
	Note       string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Homework *Homework `gorm:"foreignKey:HomeworkID" json:"homework,omitempty"`
}
