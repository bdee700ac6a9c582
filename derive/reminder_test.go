package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

var remNow = time.Date(2026, 2, 4, 9, 0, 0, 0, time.Local)

func reminderAt(id string, at time.Time) models.ReminderView {
	return models.ReminderView{ID: id, RemindAt: at}
}

func TestSortByClosest(t *testing.T) {
	items := []models.ReminderView{
		reminderAt("rem-1", remNow.Add(48*time.Hour)),
		reminderAt("rem-2", remNow.Add(time.Hour)),
		reminderAt("rem-3", remNow.Add(24*time.Hour)),
	}

	sorted := SortByClosest(items)
	assert.Equal(t, "rem-2", sorted[0].ID)
	assert.Equal(t, "rem-3", sorted[1].ID)
	assert.Equal(t, "rem-1", sorted[2].ID)
	// Input untouched.
	assert.Equal(t, "rem-1", items[0].ID)
}

func TestGroupReminders(t *testing.T) {
	items := []models.ReminderView{
		reminderAt("later", remNow.AddDate(0, 0, 10)),
		reminderAt("today-now", remNow),
		reminderAt("overdue", remNow.Add(-24*time.Hour)),
		// 21:00 today is still today, calendar days decide, not 24h windows.
		reminderAt("today-late", remNow.Add(12*time.Hour)),
		// +36h lands on Feb 5 at 21:00: tomorrow.
		reminderAt("tomorrow", remNow.Add(36*time.Hour)),
		reminderAt("week", remNow.AddDate(0, 0, 3)),
	}

	groups := GroupReminders(items, remNow)
	require.Len(t, groups, 5)

	assert.Equal(t, GroupOverdue, groups[0].Key)
	assert.Equal(t, "Просрочено", groups[0].Title)
	assert.Equal(t, []string{"overdue"}, reminderIDs(groups[0].Items))

	assert.Equal(t, GroupToday, groups[1].Key)
	assert.Equal(t, "Сегодня", groups[1].Title)
	assert.Equal(t, []string{"today-now", "today-late"}, reminderIDs(groups[1].Items))

	assert.Equal(t, GroupTomorrow, groups[2].Key)
	assert.Equal(t, []string{"tomorrow"}, reminderIDs(groups[2].Items))

	assert.Equal(t, GroupWeek, groups[3].Key)
	assert.Equal(t, []string{"week"}, reminderIDs(groups[3].Items))

	assert.Equal(t, GroupLater, groups[4].Key)
	assert.Equal(t, "Позднее", groups[4].Title)
	assert.Equal(t, []string{"later"}, reminderIDs(groups[4].Items))

	// Every input ends up in exactly one bucket.
	total := 0
	for _, group := range groups {
		total += len(group.Items)
	}
	assert.Equal(t, len(items), total)
}

func TestGroupRemindersDropsEmptyGroups(t *testing.T) {
	items := []models.ReminderView{
		reminderAt("rem-1", remNow.Add(time.Hour)),
		reminderAt("rem-2", remNow.AddDate(0, 0, 20)),
	}

	groups := GroupReminders(items, remNow)
	require.Len(t, groups, 2)
	assert.Equal(t, GroupToday, groups[0].Key)
	assert.Equal(t, GroupLater, groups[1].Key)
}

func TestGroupRemindersWeekBoundary(t *testing.T) {
	// Day +6 is the last "week" day; day +7 falls into "later".
	items := []models.ReminderView{
		reminderAt("last-week-day", StartOfDay(remNow).AddDate(0, 0, 6).Add(23*time.Hour)),
		reminderAt("first-later-day", StartOfDay(remNow).AddDate(0, 0, 7)),
	}

	groups := GroupReminders(items, remNow)
	require.Len(t, groups, 2)
	assert.Equal(t, GroupWeek, groups[0].Key)
	assert.Equal(t, []string{"last-week-day"}, reminderIDs(groups[0].Items))
	assert.Equal(t, GroupLater, groups[1].Key)
	assert.Equal(t, []string{"first-later-day"}, reminderIDs(groups[1].Items))
}

func TestGroupRemindersEmpty(t *testing.T) {
	assert.Empty(t, GroupReminders(nil, remNow))
}

func reminderIDs(items []models.ReminderView) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
