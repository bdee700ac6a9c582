package models

// SubjectRequest is the create/update payload for a subject.
type SubjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// ScheduleSlotRequest is the create/update payload for a schedule slot.
// Time-range and overlap rules are checked in the handler before any write.
type ScheduleSlotRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	DayOfWeek int    `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Room      string `json:"room"`
}

// HomeworkCreateRequest is the create payload for a homework.
type HomeworkCreateRequest struct {
	SubjectID   string `json:"subject_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"`
}

// HomeworkUpdateRequest carries only the fields the client wants to change.
type HomeworkUpdateRequest struct {
	SubjectID   *string `json:"subject_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	IsCompleted *bool   `json:"is_completed"`
}

// ReminderCreateRequest is the create payload for a reminder. RemindAt is an
// RFC3339 instant and must be strictly in the future.
type ReminderCreateRequest struct {
	HomeworkID string `json:"homework_id" binding:"required"`
	RemindAt   string `json:"remind_at" binding:"required"`
}

// ReminderUpdateRequest moves an existing reminder.
type ReminderUpdateRequest struct {
	RemindAt string `json:"remind_at" binding:"required"`
}

// MoodEntryRequest records how hard a homework felt.
type MoodEntryRequest struct {
	HomeworkID string `json:"homework_id" binding:"required"`
	Mood       string `json:"mood" binding:"required,oneof=easy normal hard"`
	Note       string `json:"note"`
}
