package derive

import (
	"sort"
	"time"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

// Reminder group keys, in the fixed presentation order.
const (
	GroupOverdue  = "overdue"
	GroupToday    = "today"
	GroupTomorrow = "tomorrow"
	GroupWeek     = "week"
	GroupLater    = "later"
)

var groupTitles = map[string]string{
	GroupOverdue:  "Просрочено",
	GroupToday:    "Сегодня",
	GroupTomorrow: "Завтра",
	GroupWeek:     "На этой неделе",
	GroupLater:    "Позднее",
}

// ReminderGroup is one relative-time bucket of the reminders page.
type ReminderGroup struct {
	Key   string                `json:"key"`
	Title string                `json:"title"`
	Items []models.ReminderView `json:"items"`
}

// SortByClosest returns a new slice ordered by remind_at ascending.
func SortByClosest(items []models.ReminderView) []models.ReminderView {
	sorted := make([]models.ReminderView, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RemindAt.Before(sorted[j].RemindAt)
	})
	return sorted
}

// GroupReminders partitions reminders into overdue/today/tomorrow/week/later
// buckets relative to now's local calendar day. Items are sorted
// chronologically first, empty groups are dropped, and group order in the
// result is always the fixed one above.
func GroupReminders(items []models.ReminderView, now time.Time) []ReminderGroup {
	todayStart := StartOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	afterTomorrow := todayStart.AddDate(0, 0, 2)
	weekEnd := todayStart.AddDate(0, 0, 7)

	groups := []ReminderGroup{
		{Key: GroupOverdue, Title: groupTitles[GroupOverdue]},
		{Key: GroupToday, Title: groupTitles[GroupToday]},
		{Key: GroupTomorrow, Title: groupTitles[GroupTomorrow]},
		{Key: GroupWeek, Title: groupTitles[GroupWeek]},
		{Key: GroupLater, Title: groupTitles[GroupLater]},
	}

	for _, item := range SortByClosest(items) {
		at := item.RemindAt
		switch {
		case at.Before(todayStart):
			groups[0].Items = append(groups[0].Items, item)
		case at.Before(tomorrowStart):
			groups[1].Items = append(groups[1].Items, item)
		case at.Before(afterTomorrow):
			groups[2].Items = append(groups[2].Items, item)
		case at.Before(weekEnd):
			groups[3].Items = append(groups[3].Items, item)
		default:
			groups[4].Items = append(groups[4].Items, item)
		}
	}

	result := make([]ReminderGroup, 0, len(groups))
	for _, group := range groups {
		if len(group.Items) > 0 {
			result = append(result, group)
		}
	}
	return result
}
