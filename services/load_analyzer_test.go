package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
)

func TestBuildDayLoadEmptyDay(t *testing.T) {
	day := BuildDayLoad(2, nil)

	assert.Equal(t, 2, day.Day)
	assert.Equal(t, 0, day.LoadScore)
	assert.Equal(t, 0, day.LessonsCount)
	assert.Empty(t, day.HardSubjects)
	assert.Empty(t, day.Warning)
	assert.Equal(t, derive.LoadLight, day.Level())
}

func TestBuildDayLoadScoresLessonsAndHardness(t *testing.T) {
	lessons := []LessonLoad{
		{Day: 1, SubjectName: "Математика", HardCount: 2},
		{Day: 1, SubjectName: "Русский", HardCount: 0},
		{Day: 1, SubjectName: "Физика", HardCount: 1},
	}

	day := BuildDayLoad(1, lessons)
	assert.Equal(t, 3, day.LessonsCount)
	// 3 lessons + 3 hard ratings.
	assert.Equal(t, 6, day.LoadScore)
	assert.Equal(t, derive.LoadMedium, day.Level())
	// Only subjects at the hardness threshold make the list.
	assert.Equal(t, []string{"Математика"}, day.HardSubjects)
	assert.Empty(t, day.Warning)
}

func TestBuildDayLoadHighLoadWarning(t *testing.T) {
	lessons := []LessonLoad{
		{Day: 3, SubjectName: "Математика", HardCount: 3},
		{Day: 3, SubjectName: "Физика", HardCount: 2},
		{Day: 3, SubjectName: "Русский", HardCount: 0},
	}

	day := BuildDayLoad(3, lessons)
	assert.Equal(t, 8, day.LoadScore)
	assert.Equal(t, derive.LoadHeavy, day.Level())
	assert.Equal(t, "Высокая нагрузка", day.Warning)
}

func TestBuildDayLoadJoinsWarnings(t *testing.T) {
	lessons := []LessonLoad{
		{Day: 5, SubjectName: "Математика", HardCount: 2},
		{Day: 5, SubjectName: "Физика", HardCount: 2},
		{Day: 5, SubjectName: "Химия", HardCount: 2},
	}

	day := BuildDayLoad(5, lessons)
	assert.Equal(t, 9, day.LoadScore)
	assert.Equal(t, []string{"Математика", "Физика", "Химия"}, day.HardSubjects)
	assert.Equal(t, "Высокая нагрузка; 3 или более сложных предметов в один день", day.Warning)
}

func TestBuildDayLoadRepeatedLessonKeepsMaxHardness(t *testing.T) {
	// The same subject twice a day counts both lessons into the score but
	// appears once in the hard-subject list.
	lessons := []LessonLoad{
		{Day: 4, SubjectName: "Математика", HardCount: 2},
		{Day: 4, SubjectName: "Математика", HardCount: 2},
	}

	day := BuildDayLoad(4, lessons)
	assert.Equal(t, 2, day.LessonsCount)
	assert.Equal(t, 6, day.LoadScore)
	assert.Equal(t, []string{"Математика"}, day.HardSubjects)
}
