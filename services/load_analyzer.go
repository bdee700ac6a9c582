package services

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
)

// Tuning of the load analyzer: a subject counts as hard after this many
// "hard" ratings, a day is overloaded from this score.
const (
	HardSubjectThreshold = 2
	HighLoadThreshold    = 8
)

// LessonLoad is one scheduled lesson with the accumulated hardness of its
// subject.
type LessonLoad struct {
	Day         int    `gorm:"column:day"`
	SubjectName string `gorm:"column:subject_name"`
	HardCount   int    `gorm:"column:hard_count"`
}

func fetchLessonLoads(db *gorm.DB, userID string, day int) ([]LessonLoad, error) {
	query := `
		SELECT s.day_of_week AS day, subj.name AS subject_name, COALESCE(h.hard_count, 0) AS hard_count
		FROM schedule_slots s
		JOIN subjects subj ON subj.id = s.subject_id
		LEFT JOIN (
			SELECT hw.subject_id AS subject_id, COUNT(m.id) AS hard_count
			FROM mood_entries m
			JOIN homeworks hw ON hw.id = m.homework_id
			WHERE m.mood = 'hard' AND m.user_id = ?
			GROUP BY hw.subject_id
		) h ON h.subject_id = subj.id
		WHERE s.user_id = ?`
	args := []interface{}{userID, userID}
	if day > 0 {
		query += " AND s.day_of_week = ?"
		args = append(args, day)
	}
	query += " ORDER BY s.day_of_week, s.start_time"

	var lessons []LessonLoad
	if err := db.Raw(query, args...).Scan(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// BuildDayLoad scores one weekday: load = lessons count + sum of hard
// ratings, with warnings for overloaded days. Pure, used directly by tests.
func BuildDayLoad(day int, lessons []LessonLoad) derive.WeekLoadDay {
	lessonsCount := len(lessons)
	hardScore := 0
	subjectHardness := make(map[string]int)
	for _, lesson := range lessons {
		hardScore += lesson.HardCount
		if lesson.HardCount > subjectHardness[lesson.SubjectName] {
			subjectHardness[lesson.SubjectName] = lesson.HardCount
		}
	}
	loadScore := lessonsCount + hardScore

	hardSubjects := make([]string, 0)
	for name, hardness := range subjectHardness {
		if hardness >= HardSubjectThreshold {
			hardSubjects = append(hardSubjects, name)
		}
	}
	sort.Strings(hardSubjects)

	var warnings []string
	if loadScore >= HighLoadThreshold {
		warnings = append(warnings, "Высокая нагрузка")
	}
	if len(hardSubjects) >= 3 {
		warnings = append(warnings, "3 или более сложных предметов в один день")
	}

	return derive.WeekLoadDay{
		Day:          day,
		LoadScore:    loadScore,
		LessonsCount: lessonsCount,
		HardSubjects: hardSubjects,
		Warning:      strings.Join(warnings, "; "),
	}
}

// AnalyzeWeekLoad scores every weekday 1..7 for one user.
func AnalyzeWeekLoad(db *gorm.DB, userID string) (derive.WeekLoad, error) {
	lessons, err := fetchLessonLoads(db, userID, 0)
	if err != nil {
		return derive.WeekLoad{}, err
	}

	byDay := make(map[int][]LessonLoad)
	for _, lesson := range lessons {
		byDay[lesson.Day] = append(byDay[lesson.Day], lesson)
	}

	week := derive.WeekLoad{Days: make([]derive.WeekLoadDay, 0, 7)}
	for day := 1; day <= 7; day++ {
		week.Days = append(week.Days, BuildDayLoad(day, byDay[day]))
	}
	return week, nil
}

// AnalyzeDayLoad scores a single weekday.
func AnalyzeDayLoad(db *gorm.DB, userID string, day int) (derive.WeekLoadDay, error) {
	lessons, err := fetchLessonLoads(db, userID, day)
	if err != nil {
		return derive.WeekLoadDay{}, err
	}
	return BuildDayLoad(day, lessons), nil
}

// OverloadWarnings collects the warning lines of the week analysis.
func OverloadWarnings(db *gorm.DB, userID string) ([]string, error) {
	week, err := AnalyzeWeekLoad(db, userID)
	if err != nil {
		return nil, err
	}
	warnings := make([]string, 0)
	for _, day := range week.Days {
		if day.Warning != "" {
			warnings = append(warnings, fmt.Sprintf("День %d: %s", day.Day, day.Warning))
		}
	}
	return warnings, nil
}
