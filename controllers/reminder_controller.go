package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/utils"
)

type ReminderController struct{}

func preloadReminder(db *gorm.DB) *gorm.DB {
	return db.Preload("Homework").Preload("Homework.Subject")
}

// toView joins a reminder with its homework and subject at read time.
func toView(reminder models.Reminder) models.ReminderView {
	view := models.ReminderView{
		ID:         reminder.ID,
		HomeworkID: reminder.HomeworkID,
		RemindAt:   reminder.RemindAt,
		IsSent:     reminder.IsSent,
	}
	if reminder.Homework != nil {
		homework := models.ReminderHomework{
			ID:    reminder.Homework.ID,
			Title: reminder.Homework.Title,
		}
		if reminder.Homework.Subject != nil {
			homework.Subject = reminder.Homework.Subject.Name
			homework.SubjectColor = reminder.Homework.Subject.Color
		}
		view.Homework = &homework
	}
	return view
}

func toViews(reminders []models.Reminder) []models.ReminderView {
	views := make([]models.ReminderView, 0, len(reminders))
	for _, reminder := range reminders {
		views = append(views, toView(reminder))
	}
	return views
}

// ListReminders returns all reminders as enriched views, closest first.
// With ?grouped=true they come back bucketed by relative day.
func (rc *ReminderController) ListReminders(c *gin.Context) {
	uid := c.GetString("uid")

	var reminders []models.Reminder
	if err := preloadReminder(config.DB).Where("user_id = ?", uid).
		Order("remind_at ASC, created_at DESC").Find(&reminders).Error; err != nil {
		config.Logger.Errorw("reminder list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reminders"})
		return
	}

	views := toViews(reminders)
	if c.Query("grouped") == "true" {
		c.JSON(http.StatusOK, gin.H{"groups": derive.GroupReminders(views, time.Now())})
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListPendingReminders returns unsent reminders that are already due.
func (rc *ReminderController) ListPendingReminders(c *gin.Context) {
	uid := c.GetString("uid")

	var reminders []models.Reminder
	if err := preloadReminder(config.DB).
		Where("user_id = ? AND is_sent = ? AND remind_at <= ?", uid, false, time.Now()).
		Order("remind_at ASC").Find(&reminders).Error; err != nil {
		config.Logger.Errorw("pending reminder list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reminders"})
		return
	}

	c.JSON(http.StatusOK, toViews(reminders))
}

// CreateReminder validates that remind_at is strictly in the future and the
// homework exists, then persists.
func (rc *ReminderController) CreateReminder(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.ReminderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !derive.IsFutureDate(req.RemindAt, time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "remind_at must be in the future"})
		return
	}
	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "remind_at must be an RFC3339 instant"})
		return
	}

	var homework models.Homework
	if err := config.DB.Where("id = ? AND user_id = ?", req.HomeworkID, uid).First(&homework).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	reminder := models.Reminder{
		ID:         utils.GenerateID(),
		UserID:     uid,
		HomeworkID: req.HomeworkID,
		RemindAt:   remindAt,
		IsSent:     false,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := config.DB.Create(&reminder).Error; err != nil {
		config.Logger.Errorw("reminder creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reminder"})
		return
	}

	var saved models.Reminder
	if err := preloadReminder(config.DB).Where("id = ?", reminder.ID).First(&saved).Error; err != nil {
		saved = reminder
	}
	c.JSON(http.StatusCreated, toView(saved))
}

// UpdateReminder moves the reminder to a new future instant and resets the
// sent flag.
func (rc *ReminderController) UpdateReminder(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var req models.ReminderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !derive.IsFutureDate(req.RemindAt, time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "remind_at must be in the future"})
		return
	}
	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "remind_at must be an RFC3339 instant"})
		return
	}

	var reminder models.Reminder
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&reminder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}

	if err := config.DB.Model(&models.Reminder{}).Where("id = ?", reminder.ID).
		Updates(map[string]interface{}{
			"remind_at":  remindAt,
			"is_sent":    false,
			"updated_at": time.Now(),
		}).Error; err != nil {
		config.Logger.Errorw("reminder update failed", "error", err, "uid", uid, "reminderID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reminder"})
		return
	}

	var saved models.Reminder
	if err := preloadReminder(config.DB).Where("id = ?", reminder.ID).First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reminder"})
		return
	}
	c.JSON(http.StatusOK, toView(saved))
}

// DeleteReminder removes one reminder.
func (rc *ReminderController) DeleteReminder(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	result := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Reminder{})
	if result.Error != nil {
		config.Logger.Errorw("reminder delete failed", "error", result.Error, "uid", uid, "reminderID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reminder"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkSent flips the sent flag by hand.
func (rc *ReminderController) MarkSent(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var reminder models.Reminder
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&reminder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}

	if err := config.DB.Model(&models.Reminder{}).Where("id = ?", reminder.ID).
		Update("is_sent", true).Error; err != nil {
		config.Logger.Errorw("reminder mark-sent failed", "error", err, "uid", uid, "reminderID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reminder"})
		return
	}

	var saved models.Reminder
	if err := preloadReminder(config.DB).Where("id = ?", reminder.ID).First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reminder"})
		return
	}
	c.JSON(http.StatusOK, toView(saved))
}
