package derive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelFor(t *testing.T) {
	assert.Equal(t, LoadLight, LoadLevelFor(0))
	assert.Equal(t, LoadLight, LoadLevelFor(3))
	assert.Equal(t, LoadMedium, LoadLevelFor(4))
	assert.Equal(t, LoadMedium, LoadLevelFor(6))
	assert.Equal(t, LoadHeavy, LoadLevelFor(7))
	assert.Equal(t, LoadHeavy, LoadLevelFor(12))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(5, 5))
}

func TestWeekLoadDayLegacyShape(t *testing.T) {
	payload := `[{"day":"Пн","load":2},{"day":"Вт","load":6},{"day":"Ср","load":8}]`

	var days []WeekLoadDay
	require.NoError(t, json.Unmarshal([]byte(payload), &days))
	require.Len(t, days, 3)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[0].LoadScore)
	assert.Equal(t, LoadLight, days[0].Level())

	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, LoadMedium, days[1].Level())

	assert.Equal(t, 3, days[2].Day)
	assert.Equal(t, LoadHeavy, days[2].Level())
}

func TestWeekLoadDayExplicitShape(t *testing.T) {
	payload := `{"day":5,"load_score":9,"lessons_count":6,"hard_subjects":["Физика","Химия"],"warning":"Высокая нагрузка"}`

	var day WeekLoadDay
	require.NoError(t, json.Unmarshal([]byte(payload), &day))

	assert.Equal(t, WeekLoadDay{
		Day:          5,
		LoadScore:    9,
		LessonsCount: 6,
		HardSubjects: []string{"Физика", "Химия"},
		Warning:      "Высокая нагрузка",
	}, day)
	assert.Equal(t, LoadHeavy, day.Level())
}

func TestWeekLoadDayUnknownLabel(t *testing.T) {
	var day WeekLoadDay
	err := json.Unmarshal([]byte(`{"day":"Null","load":1}`), &day)
	assert.Error(t, err)
}

func TestMoodStatsLegacyShape(t *testing.T) {
	var stats MoodStats
	require.NoError(t, json.Unmarshal([]byte(`{"easy":1,"normal":2,"hard":1}`), &stats))

	assert.Equal(t, MoodStats{EasyCount: 1, NormalCount: 2, HardCount: 1}, stats)
	assert.Equal(t, 4, stats.Total())
	assert.Equal(t, 25, stats.EasyPercent())
	assert.Equal(t, 50, stats.NormalPercent())
	assert.Equal(t, 25, stats.HardPercent())
}

func TestMoodStatsExplicitShape(t *testing.T) {
	var stats MoodStats
	require.NoError(t, json.Unmarshal([]byte(`{"easy_count":3,"normal_count":0,"hard_count":1}`), &stats))
	assert.Equal(t, MoodStats{EasyCount: 3, HardCount: 1}, stats)
}

func TestMoodStatsEmpty(t *testing.T) {
	var stats MoodStats
	require.NoError(t, json.Unmarshal([]byte(`{}`), &stats))
	assert.Equal(t, 0, stats.Total())
	assert.Equal(t, 0, stats.EasyPercent())
	assert.Equal(t, 0, stats.NormalPercent())
	assert.Equal(t, 0, stats.HardPercent())
}
