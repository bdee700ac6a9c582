package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

// Wednesday, so the current Monday-anchored week is Feb 2 .. Feb 8.
var hwNow = time.Date(2026, 2, 4, 12, 0, 0, 0, time.Local)

func sampleHomework() []models.Homework {
	return []models.Homework{
		{ID: "hw-1", SubjectID: "math", Title: "Уравнения", Deadline: "2026-02-03", IsCompleted: true},
		{ID: "hw-2", SubjectID: "math", Title: "Задачи", Deadline: "2026-02-08"},
		{ID: "hw-3", SubjectID: "rus", Title: "Сочинение", Deadline: "2026-02-09"},
		{ID: "hw-4", SubjectID: "rus", Title: "Диктант", Deadline: "2026-02-27"},
		{ID: "hw-5", SubjectID: "bio", Title: "Доклад", Deadline: "2026-03-01"},
	}
}

func hwIDs(items []models.Homework) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestFilterHomeworkAllIsIdentity(t *testing.T) {
	items := sampleHomework()
	filters := HomeworkFilters{Subject: FilterAll, Status: FilterAll, Deadline: FilterAll}
	assert.Equal(t, items, FilterHomework(items, filters, hwNow))
	assert.Equal(t, items, FilterHomework(items, HomeworkFilters{}, hwNow))
}

func TestFilterHomeworkBySubject(t *testing.T) {
	got := FilterHomework(sampleHomework(), HomeworkFilters{Subject: "rus"}, hwNow)
	assert.Equal(t, []string{"hw-3", "hw-4"}, hwIDs(got))
}

func TestFilterHomeworkByStatus(t *testing.T) {
	items := sampleHomework()

	completed := FilterHomework(items, HomeworkFilters{Status: StatusCompleted}, hwNow)
	assert.Equal(t, []string{"hw-1"}, hwIDs(completed))

	active := FilterHomework(items, HomeworkFilters{Status: StatusActive}, hwNow)
	assert.Equal(t, []string{"hw-2", "hw-3", "hw-4", "hw-5"}, hwIDs(active))
}

func TestFilterHomeworkByDeadlineWeek(t *testing.T) {
	// Sunday Feb 8 is the last day of the window, Monday Feb 9 is out.
	got := FilterHomework(sampleHomework(), HomeworkFilters{Deadline: DeadlineWeek}, hwNow)
	assert.Equal(t, []string{"hw-1", "hw-2"}, hwIDs(got))
}

func TestFilterHomeworkByDeadlineMonth(t *testing.T) {
	got := FilterHomework(sampleHomework(), HomeworkFilters{Deadline: DeadlineMonth}, hwNow)
	assert.Equal(t, []string{"hw-1", "hw-2", "hw-3", "hw-4"}, hwIDs(got))
}

func TestFilterHomeworkComposesWithAnd(t *testing.T) {
	filters := HomeworkFilters{Subject: "math", Status: StatusActive, Deadline: DeadlineWeek}
	got := FilterHomework(sampleHomework(), filters, hwNow)
	assert.Equal(t, []string{"hw-2"}, hwIDs(got))
}

func TestSortByDeadline(t *testing.T) {
	items := []models.Homework{
		{ID: "hw-1", Deadline: "2026-02-20"},
		{ID: "hw-2", Deadline: "2026-02-05"},
		{ID: "hw-3", Deadline: "2026-02-05"},
		{ID: "hw-4", Deadline: "2026-02-10"},
	}

	sorted := SortByDeadline(items)
	assert.Equal(t, []string{"hw-2", "hw-3", "hw-4", "hw-1"}, hwIDs(sorted))
	// Input slice is untouched.
	assert.Equal(t, []string{"hw-1", "hw-2", "hw-3", "hw-4"}, hwIDs(items))
	// Idempotent.
	assert.Equal(t, sorted, SortByDeadline(sorted))
}

func TestSortByDeadlineUnparseableFirst(t *testing.T) {
	items := []models.Homework{
		{ID: "hw-1", Deadline: "2026-02-05"},
		{ID: "hw-2", Deadline: ""},
	}
	assert.Equal(t, []string{"hw-2", "hw-1"}, hwIDs(SortByDeadline(items)))
}

func TestStepsProgress(t *testing.T) {
	assert.Equal(t, 0, StepsProgress(nil))

	steps := []models.HomeworkStep{
		{IsCompleted: true},
		{IsCompleted: false},
	}
	assert.Equal(t, 50, StepsProgress(steps))

	steps = append(steps, models.HomeworkStep{IsCompleted: true})
	assert.Equal(t, 67, StepsProgress(steps))
}
