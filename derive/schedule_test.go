package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

func mondaySlot(id, start, end string) models.ScheduleSlot {
	return models.ScheduleSlot{ID: id, DayOfWeek: 1, StartTime: start, EndTime: end}
}

func TestHasSlotOverlap(t *testing.T) {
	existing := []models.ScheduleSlot{mondaySlot("slot-1", "09:00", "09:45")}

	assert.True(t, HasSlotOverlap(mondaySlot("", "09:30", "10:15"), existing, ""))
	assert.True(t, HasSlotOverlap(mondaySlot("", "08:30", "09:15"), existing, ""))
	// Containment both ways.
	assert.True(t, HasSlotOverlap(mondaySlot("", "09:10", "09:20"), existing, ""))
	assert.True(t, HasSlotOverlap(mondaySlot("", "08:00", "12:00"), existing, ""))
	// Back-to-back slots share an endpoint but not time.
	assert.False(t, HasSlotOverlap(mondaySlot("", "09:45", "10:30"), existing, ""))
	assert.False(t, HasSlotOverlap(mondaySlot("", "08:15", "09:00"), existing, ""))
}

func TestHasSlotOverlapOtherDay(t *testing.T) {
	existing := []models.ScheduleSlot{mondaySlot("slot-1", "09:00", "09:45")}
	candidate := models.ScheduleSlot{DayOfWeek: 2, StartTime: "09:00", EndTime: "09:45"}
	assert.False(t, HasSlotOverlap(candidate, existing, ""))
}

func TestHasSlotOverlapExcludesEditedSlot(t *testing.T) {
	existing := []models.ScheduleSlot{
		mondaySlot("slot-1", "09:00", "09:45"),
		mondaySlot("slot-2", "10:00", "10:45"),
	}

	// Moving slot-1 a little later only collides with slot-2.
	assert.False(t, HasSlotOverlap(mondaySlot("slot-1", "09:15", "10:00"), existing, "slot-1"))
	assert.True(t, HasSlotOverlap(mondaySlot("slot-1", "09:30", "10:15"), existing, "slot-1"))
}

func TestValidSlotTimes(t *testing.T) {
	assert.True(t, ValidSlotTimes("08:00", "08:45"))
	assert.False(t, ValidSlotTimes("08:00", "08:00"))
	assert.False(t, ValidSlotTimes("09:00", "08:45"))
}

func TestValidSlotTimeFormat(t *testing.T) {
	assert.True(t, ValidSlotTimeFormat("08:00"))
	assert.True(t, ValidSlotTimeFormat("23:59"))
	assert.True(t, ValidSlotTimeFormat("00:00"))
	// Unpadded hours would break lexical comparison.
	assert.False(t, ValidSlotTimeFormat("9:00"))
	assert.False(t, ValidSlotTimeFormat("24:00"))
	assert.False(t, ValidSlotTimeFormat("09:60"))
	assert.False(t, ValidSlotTimeFormat("09:0"))
	assert.False(t, ValidSlotTimeFormat("0900"))
	assert.False(t, ValidSlotTimeFormat(""))
}

func TestBuildInitialSlotValues(t *testing.T) {
	subjects := []models.Subject{{ID: "math"}, {ID: "rus"}}

	fresh := BuildInitialSlotValues(nil, subjects)
	assert.Equal(t, models.ScheduleSlotRequest{
		SubjectID: "math",
		DayOfWeek: DefaultDayOfWeek,
		StartTime: DefaultStartTime,
		EndTime:   DefaultEndTime,
	}, fresh)

	noSubjects := BuildInitialSlotValues(nil, nil)
	assert.Empty(t, noSubjects.SubjectID)
	assert.Equal(t, DefaultDayOfWeek, noSubjects.DayOfWeek)

	existing := &models.ScheduleSlot{
		SubjectID: "rus",
		DayOfWeek: 3,
		StartTime: "10:00",
		EndTime:   "10:45",
		Room:      "204",
	}
	edited := BuildInitialSlotValues(existing, subjects)
	assert.Equal(t, models.ScheduleSlotRequest{
		SubjectID: "rus",
		DayOfWeek: 3,
		StartTime: "10:00",
		EndTime:   "10:45",
		Room:      "204",
	}, edited)
}

func TestGroupSlotsByDay(t *testing.T) {
	slots := []models.ScheduleSlot{
		{ID: "slot-1", DayOfWeek: 3, StartTime: "10:00", EndTime: "10:45"},
		{ID: "slot-2", DayOfWeek: 1, StartTime: "09:00", EndTime: "09:45"},
		{ID: "slot-3", DayOfWeek: 3, StartTime: "08:00", EndTime: "08:45"},
	}

	groups := GroupSlotsByDay(slots)
	assert.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].Day)
	assert.Equal(t, []string{"slot-2"}, slotIDs(groups[0].Slots))

	assert.Equal(t, 3, groups[1].Day)
	assert.Equal(t, []string{"slot-3", "slot-1"}, slotIDs(groups[1].Slots))
}

func TestGroupSlotsByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupSlotsByDay(nil))
}

func slotIDs(slots []models.ScheduleSlot) []string {
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.ID)
	}
	return ids
}
