package models

import "time"

// ReminderHomework is the slice of homework a reminder card needs.
type ReminderHomework struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Subject      string `json:"subject"`
	SubjectColor string `json:"subject_color"`
}

// ReminderView is a reminder enriched with its owning homework and that
// homework's subject. The join happens at read time, nothing extra is stored.
type ReminderView struct {
	ID         string            `json:"id"`
	HomeworkID string            `json:"homework_id"`
	RemindAt   time.Time         `json:"remind_at"`
	IsSent     bool              `json:"is_sent"`
	Homework   *ReminderHomework `json:"homework"`
}

// GenerateStepsResponse returns the freshly generated step breakdown.
type GenerateStepsResponse struct {
	Steps []HomeworkStep `json:"steps"`
	Count int            `json:"count"`
}

// Material is one recommended learning resource.
type Material struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

// MaterialsResponse is the materials assistant answer for a homework.
type MaterialsResponse struct {
	Materials      []Material `json:"materials"`
	Recommendation string     `json:"recommendation"`
}

// AuthResponse returns the guest token and profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
