package derive

import (
	"math"
	"sort"
	"time"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

// Filter values shared by the homework list endpoints and the UI.
const (
	FilterAll       = "all"
	StatusCompleted = "completed"
	StatusActive    = "active"
	DeadlineWeek    = "week"
	DeadlineMonth   = "month"
)

// HomeworkFilters describes the three list filters. Zero values behave like
// "all". Active filters compose with logical AND.
type HomeworkFilters struct {
	Subject  string
	Status   string
	Deadline string
}

// FilterHomework returns the subset of items matching every active filter.
func FilterHomework(items []models.Homework, filters HomeworkFilters, now time.Time) []models.Homework {
	result := make([]models.Homework, 0, len(items))
	for _, item := range items {
		if filters.Subject != "" && filters.Subject != FilterAll && item.SubjectID != filters.Subject {
			continue
		}
		if filters.Status == StatusCompleted && !item.IsCompleted {
			continue
		}
		if filters.Status == StatusActive && item.IsCompleted {
			continue
		}
		if !matchesDeadline(item.Deadline, filters.Deadline, now) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesDeadline(deadline, filter string, now time.Time) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	date := ParseWhen(deadline)
	if filter == DeadlineWeek {
		return inCurrentWeek(date, now)
	}
	return date.Month() == now.Month() && date.Year() == now.Year()
}

// inCurrentWeek checks the Monday-anchored local week containing now:
// [Monday 00:00, next Monday 00:00).
func inCurrentWeek(value, now time.Time) bool {
	weekday := (int(now.Weekday()) + 6) % 7
	weekStart := StartOfDay(now).AddDate(0, 0, -weekday)
	weekEnd := weekStart.AddDate(0, 0, 7)
	return !value.Before(weekStart) && value.Before(weekEnd)
}

// SortByDeadline returns a new slice ordered by deadline ascending. The sort
// is stable, so items sharing a deadline keep their relative order.
// Unparseable deadlines collapse to the zero instant and gather at the front.
func SortByDeadline(items []models.Homework) []models.Homework {
	sorted := make([]models.Homework, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseWhen(sorted[i].Deadline).Before(ParseWhen(sorted[j].Deadline))
	})
	return sorted
}

// StepsProgress returns the completed percentage of a step breakdown,
// 0 when there are no steps.
func StepsProgress(steps []models.HomeworkStep) int {
	if len(steps) == 0 {
		return 0
	}
	done := 0
	for _, step := range steps {
		if step.IsCompleted {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(steps)) * 100))
}
