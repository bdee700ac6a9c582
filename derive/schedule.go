package derive

import (
	"regexp"
	"sort"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

// Defaults for a fresh schedule slot form: first subject, Monday, first lesson.
const (
	DefaultDayOfWeek = 1
	DefaultStartTime = "08:00"
	DefaultEndTime   = "08:45"
)

// BuildInitialSlotValues fills the slot form: copies an existing slot when
// editing, otherwise falls back to defaults.
func BuildInitialSlotValues(existing *models.ScheduleSlot, subjects []models.Subject) models.ScheduleSlotRequest {
	if existing != nil {
		return models.ScheduleSlotRequest{
			SubjectID: existing.SubjectID,
			DayOfWeek: existing.DayOfWeek,
			StartTime: existing.StartTime,
			EndTime:   existing.EndTime,
			Room:      existing.Room,
		}
	}
	values := models.ScheduleSlotRequest{
		DayOfWeek: DefaultDayOfWeek,
		StartTime: DefaultStartTime,
		EndTime:   DefaultEndTime,
	}
	if len(subjects) > 0 {
		values.SubjectID = subjects[0].ID
	}
	return values
}

var slotTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidSlotTimeFormat reports whether value is a zero-padded HH:MM string.
// Values like "9:00" would break the lexical interval comparisons, so the
// write path rejects them before any range or overlap check.
func ValidSlotTimeFormat(value string) bool {
	return slotTimePattern.MatchString(value)
}

// ValidSlotTimes reports whether the range is non-empty: end strictly after
// start. HH:MM strings are fixed width, lexical comparison is chronological.
func ValidSlotTimes(startTime, endTime string) bool {
	return endTime > startTime
}

// HasSlotOverlap reports whether the candidate intersects any existing slot on
// the same weekday. Intervals are half-open [start, end), so back-to-back
// slots do not overlap. excludeID skips the slot being edited in place.
func HasSlotOverlap(candidate models.ScheduleSlot, existing []models.ScheduleSlot, excludeID string) bool {
	for _, slot := range existing {
		if slot.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if excludeID != "" && slot.ID == excludeID {
			continue
		}
		if candidate.StartTime < slot.EndTime && candidate.EndTime > slot.StartTime {
			return true
		}
	}
	return false
}

// DaySlots is one weekday bucket of the schedule grid.
type DaySlots struct {
	Day   int                   `json:"day"`
	Slots []models.ScheduleSlot `json:"slots"`
}

// GroupSlotsByDay buckets slots per weekday in 1..7 order, each bucket sorted
// by start time. Empty days are omitted.
func GroupSlotsByDay(slots []models.ScheduleSlot) []DaySlots {
	byDay := make(map[int][]models.ScheduleSlot)
	for _, slot := range slots {
		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], slot)
	}
	result := make([]DaySlots, 0, len(byDay))
	for day := 1; day <= 7; day++ {
		bucket, ok := byDay[day]
		if !ok {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].StartTime < bucket[j].StartTime
		})
		result = append(result, DaySlots{Day: day, Slots: bucket})
	}
	return result
}
