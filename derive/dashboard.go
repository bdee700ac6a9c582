package derive

import (
	"fmt"
	"time"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

const noRisksDescription = "Рисков не найдено."

// NearestHomework is the closest undone assignment with a human remaining-time
// label.
type NearestHomework struct {
	Title     string `json:"title"`
	Deadline  string `json:"deadline"`
	Remaining string `json:"remaining"`
}

// TodayLessons summarises the current weekday of the schedule.
type TodayLessons struct {
	Count    int      `json:"count"`
	Subjects []string `json:"subjects"`
}

// WarningsSummary is the top of the warnings list.
type WarningsSummary struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// Summary is the dashboard projection. Fully derived, never persisted.
type Summary struct {
	NearestHomework *NearestHomework `json:"nearest_homework"`
	TodayLessons    TodayLessons     `json:"today_lessons"`
	Warnings        WarningsSummary  `json:"warnings"`
}

// EmptySummary is the safe default every projection degrades to.
func EmptySummary() Summary {
	return Summary{
		TodayLessons: TodayLessons{Subjects: []string{}},
		Warnings:     WarningsSummary{Count: 0, Description: noRisksDescription},
	}
}

// BuildSummary combines the four independent snapshots into the dashboard
// summary. Each projection tolerates an empty source on its own.
func BuildSummary(
	homework []models.Homework,
	slots []models.ScheduleSlot,
	subjects []models.Subject,
	warnings []string,
	now time.Time,
) Summary {
	return Summary{
		NearestHomework: nearestHomework(homework, now),
		TodayLessons:    todayLessons(slots, subjects, now),
		Warnings:        warningsSummary(warnings),
	}
}

func nearestHomework(homework []models.Homework, now time.Time) *NearestHomework {
	undone := make([]models.Homework, 0, len(homework))
	for _, item := range homework {
		if !item.IsCompleted {
			undone = append(undone, item)
		}
	}
	if len(undone) == 0 {
		return nil
	}
	nearest := SortByDeadline(undone)[0]
	return &NearestHomework{
		Title:     nearest.Title,
		Deadline:  nearest.Deadline,
		Remaining: remainingLabel(nearest.Deadline, now),
	}
}

func remainingLabel(deadline string, now time.Time) string {
	days := DaysBetween(now, ParseWhen(deadline))
	switch {
	case days < 0:
		return "Срок прошёл"
	case days == 0:
		return "Сдать сегодня"
	case days == 1:
		return "1 день до дедлайна"
	default:
		return fmt.Sprintf("%d дн. до дедлайна", days)
	}
}

func todayLessons(slots []models.ScheduleSlot, subjects []models.Subject, now time.Time) TodayLessons {
	// time.Weekday has Sunday = 0, the schedule keeps Monday = 1 .. Sunday = 7.
	day := int(now.Weekday())
	if day == 0 {
		day = 7
	}

	names := make(map[string]string, len(subjects))
	for _, subject := range subjects {
		names[subject.ID] = subject.Name
	}

	today := make([]models.ScheduleSlot, 0)
	for _, slot := range slots {
		if slot.DayOfWeek == day {
			today = append(today, slot)
		}
	}
	grouped := GroupSlotsByDay(today)

	lessons := TodayLessons{Subjects: []string{}}
	if len(grouped) == 0 {
		return lessons
	}

	lessons.Count = len(grouped[0].Slots)
	seen := make(map[string]bool)
	for _, slot := range grouped[0].Slots {
		name, ok := names[slot.SubjectID]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		lessons.Subjects = append(lessons.Subjects, name)
	}
	return lessons
}

func warningsSummary(warnings []string) WarningsSummary {
	if len(warnings) == 0 {
		return WarningsSummary{Count: 0, Description: noRisksDescription}
	}
	return WarningsSummary{Count: len(warnings), Description: warnings[0]}
}
