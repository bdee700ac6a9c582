package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/utils"
)

type MoodController struct{}

// CreateEntry records how hard a homework felt.
func (mc *MoodController) CreateEntry(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var homework models.Homework
	if err := config.DB.Where("id = ? AND user_id = ?", req.HomeworkID, uid).First(&homework).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	entry := models.MoodEntry{
		ID:         utils.GenerateID(),
		UserID:     uid,
		HomeworkID: req.HomeworkID,
		Date:       time.Now(),
		Mood:       req.Mood,
		Note:       req.Note,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("mood entry creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create mood entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries returns the mood journal, newest first. Optional query filters:
// date_from, date_to, subject_id.
func (mc *MoodController) ListEntries(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Preload("Homework").Preload("Homework.Subject").
		Joins("JOIN homeworks ON homeworks.id = mood_entries.homework_id").
		Where("mood_entries.user_id = ?", uid)
	if from := c.Query("date_from"); from != "" {
		query = query.Where("mood_entries.date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		query = query.Where("mood_entries.date <= ?", to)
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		query = query.Where("homeworks.subject_id = ?", subjectID)
	}

	var entries []models.MoodEntry
	if err := query.Order("mood_entries.created_at DESC").Find(&entries).Error; err != nil {
		config.Logger.Errorw("mood list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mood entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Stats returns the aggregated difficulty counts.
func (mc *MoodController) Stats(c *gin.Context) {
	uid := c.GetString("uid")

	var stats derive.MoodStats
	if err := config.DB.Raw(`
		SELECT
			COUNT(CASE WHEN mood = 'easy' THEN 1 END) AS easy_count,
			COUNT(CASE WHEN mood = 'normal' THEN 1 END) AS normal_count,
			COUNT(CASE WHEN mood = 'hard' THEN 1 END) AS hard_count
		FROM mood_entries
		WHERE user_id = ?`, uid).Scan(&stats).Error; err != nil {
		config.Logger.Errorw("mood stats failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mood stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"easy_count":     stats.EasyCount,
		"normal_count":   stats.NormalCount,
		"hard_count":     stats.HardCount,
		"total":          stats.Total(),
		"easy_percent":   stats.EasyPercent(),
		"normal_percent": stats.NormalPercent(),
		"hard_percent":   stats.HardPercent(),
	})
}
