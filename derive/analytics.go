package derive

import (
	"encoding/json"
	"fmt"
	"math"
)

// LoadLevel is the severity band of a day's load score.
type LoadLevel string

const (
	LoadLight  LoadLevel = "light"
	LoadMedium LoadLevel = "medium"
	LoadHeavy  LoadLevel = "heavy"
)

// LoadLevelFor bands a load score: <=3 light, 4..6 medium, >6 heavy.
func LoadLevelFor(score int) LoadLevel {
	switch {
	case score <= 3:
		return LoadLight
	case score <= 6:
		return LoadMedium
	default:
		return LoadHeavy
	}
}

// Percent returns the rounded share of part in total, 0 for an empty total.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Week-day labels used by the legacy week-load payload shape.
var dayByLabel = map[string]int{
	"Пн": 1, "Вт": 2, "Ср": 3, "Чт": 4, "Пт": 5, "Сб": 6, "Вс": 7,
}

// WeekLoadDay is the canonical per-day load record. Two payload shapes exist
// in the wild: the explicit one ({"day":1,"load_score":2,...}) and the legacy
// terse one ({"day":"Пн","load":2}); UnmarshalJSON accepts both so banding
// and totals are computed against a single schema only.
type WeekLoadDay struct {
	Day          int      `json:"day"`
	LoadScore    int      `json:"load_score"`
	LessonsCount int      `json:"lessons_count"`
	HardSubjects []string `json:"hard_subjects"`
	Warning      string   `json:"warning,omitempty"`
}

func (d *WeekLoadDay) UnmarshalJSON(data []byte) error {
	var raw struct {
		Day          json.RawMessage `json:"day"`
		Load         *int            `json:"load"`
		LoadScore    *int            `json:"load_score"`
		LessonsCount int             `json:"lessons_count"`
		HardSubjects []string        `json:"hard_subjects"`
		Warning      *string         `json:"warning"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw.Day) > 0 {
		var dayNumber int
		if err := json.Unmarshal(raw.Day, &dayNumber); err == nil {
			d.Day = dayNumber
		} else {
			var label string
			if err := json.Unmarshal(raw.Day, &label); err != nil {
				return fmt.Errorf("week load day: unsupported day value %s", raw.Day)
			}
			dayNumber, ok := dayByLabel[label]
			if !ok {
				return fmt.Errorf("week load day: unknown day label %q", label)
			}
			d.Day = dayNumber
		}
	}

	switch {
	case raw.LoadScore != nil:
		d.LoadScore = *raw.LoadScore
	case raw.Load != nil:
		d.LoadScore = *raw.Load
	}
	d.LessonsCount = raw.LessonsCount
	d.HardSubjects = raw.HardSubjects
	if raw.Warning != nil {
		d.Warning = *raw.Warning
	}
	return nil
}

// Level is the severity band of this day.
func (d WeekLoadDay) Level() LoadLevel {
	return LoadLevelFor(d.LoadScore)
}

// WeekLoad is the week-load analysis, keyed by day rather than array order.
type WeekLoad struct {
	Days []WeekLoadDay `json:"days"`
}

// MoodStats aggregates difficulty ratings. The legacy payload shape used
// terse field names ({"easy":1,...}); UnmarshalJSON normalizes either shape.
type MoodStats struct {
	EasyCount   int `json:"easy_count"`
	NormalCount int `json:"normal_count"`
	HardCount   int `json:"hard_count"`
}

func (s *MoodStats) UnmarshalJSON(data []byte) error {
	var raw struct {
		Easy        *int `json:"easy"`
		Normal      *int `json:"normal"`
		Hard        *int `json:"hard"`
		EasyCount   *int `json:"easy_count"`
		NormalCount *int `json:"normal_count"`
		HardCount   *int `json:"hard_count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pick := func(explicit, legacy *int) int {
		if explicit != nil {
			return *explicit
		}
		if legacy != nil {
			return *legacy
		}
		return 0
	}
	s.EasyCount = pick(raw.EasyCount, raw.Easy)
	s.NormalCount = pick(raw.NormalCount, raw.Normal)
	s.HardCount = pick(raw.HardCount, raw.Hard)
	return nil
}

// Total is the number of ratings behind the stats.
func (s MoodStats) Total() int {
	return s.EasyCount + s.NormalCount + s.HardCount
}

// EasyPercent, NormalPercent and HardPercent derive shares of the total,
// 0 when there are no ratings yet.
func (s MoodStats) EasyPercent() int   { return Percent(s.EasyCount, s.Total()) }
func (s MoodStats) NormalPercent() int { return Percent(s.NormalCount, s.Total()) }
func (s MoodStats) HardPercent() int   { return Percent(s.HardCount, s.Total()) }
