package models

import "time"

// Homework is one assignment with an optional step breakdown. Deadline is a
// calendar date kept as a YYYY-MM-DD string; read-side derivations parse it
// tolerantly, write-side validation rejects past dates.
type Homework struct {
	ID          string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string     `gorm:"type:varchar(50);index" json:"user_id"`
	SubjectID   string     `gorm:"type:varchar(50);index" json:"subject_id"`
	Title       string     `gorm:"type:varchar(255)" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Deadline    string     `gorm:"type:varchar(10)" json:"deadline"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Subject *Subject       `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Steps   []HomeworkStep `gorm:"foreignKey:HomeworkID" json:"steps,omitempty"`

	// Progress is the completed-step percentage, filled at read time.
	Progress int `gorm:"-" json:"progress"`
}
