package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/utils"
)

type ScheduleController struct{}

// ListSlots returns the schedule, optionally narrowed to one weekday via
// ?day_of_week=. With ?grouped=true slots come back as per-day buckets.
func (sc *ScheduleController) ListSlots(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Preload("Subject").Where("user_id = ?", uid)
	if dayStr := c.Query("day_of_week"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 || day > 7 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day_of_week must be 1..7"})
			return
		}
		query = query.Where("day_of_week = ?", day)
	}

	var slots []models.ScheduleSlot
	if err := query.Order("day_of_week ASC, start_time ASC").Find(&slots).Error; err != nil {
		config.Logger.Errorw("schedule list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	if c.Query("grouped") == "true" {
		c.JSON(http.StatusOK, gin.H{"days": derive.GroupSlotsByDay(slots)})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SlotForm returns prefill values for the slot form: the stored slot when
// ?slot_id= points at one, otherwise defaults with the first subject.
func (sc *ScheduleController) SlotForm(c *gin.Context) {
	uid := c.GetString("uid")

	var existing *models.ScheduleSlot
	if slotID := c.Query("slot_id"); slotID != "" {
		var slot models.ScheduleSlot
		if err := config.DB.Where("id = ? AND user_id = ?", slotID, uid).First(&slot).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule slot not found"})
			return
		}
		existing = &slot
	}

	var subjects []models.Subject
	if err := config.DB.Where("user_id = ?", uid).Order("name ASC").Find(&subjects).Error; err != nil {
		config.Logger.Errorw("subject list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subjects"})
		return
	}

	c.JSON(http.StatusOK, derive.BuildInitialSlotValues(existing, subjects))
}

// GetSlot returns one slot.
func (sc *ScheduleController) GetSlot(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var slot models.ScheduleSlot
	if err := config.DB.Preload("Subject").Where("id = ? AND user_id = ?", id, uid).First(&slot).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule slot not found"})
		return
	}

	c.JSON(http.StatusOK, slot)
}

// CreateSlot validates the time range and overlap rule against the stored
// snapshot, then persists the slot.
func (sc *ScheduleController) CreateSlot(c *gin.Context) {
	sc.upsertSlot(c, "")
}

// UpdateSlot re-runs the same validation excluding the edited slot itself.
func (sc *ScheduleController) UpdateSlot(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var existing models.ScheduleSlot
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule slot not found"})
		return
	}

	sc.upsertSlot(c, id)
}

func (sc *ScheduleController) upsertSlot(c *gin.Context, slotID string) {
	uid := c.GetString("uid")

	var req models.ScheduleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !derive.ValidSlotTimeFormat(req.StartTime) || !derive.ValidSlotTimeFormat(req.EndTime) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "start_time and end_time must be HH:MM"})
		return
	}
	if !derive.ValidSlotTimes(req.StartTime, req.EndTime) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "end_time must be after start_time"})
		return
	}

	var subject models.Subject
	if err := config.DB.Where("id = ? AND user_id = ?", req.SubjectID, uid).First(&subject).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
		return
	}

	var existing []models.ScheduleSlot
	if err := config.DB.Where("user_id = ? AND day_of_week = ?", uid, req.DayOfWeek).Find(&existing).Error; err != nil {
		config.Logger.Errorw("schedule snapshot load failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	candidate := models.ScheduleSlot{
		ID:        slotID,
		UserID:    uid,
		SubjectID: req.SubjectID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
	}
	if derive.HasSlotOverlap(candidate, existing, slotID) {
		c.JSON(http.StatusConflict, gin.H{"error": "schedule slot overlaps with an existing slot"})
		return
	}

	if slotID == "" {
		candidate.ID = utils.GenerateID()
		candidate.CreatedAt = time.Now()
		candidate.UpdatedAt = time.Now()
		if err := config.DB.Create(&candidate).Error; err != nil {
			config.Logger.Errorw("schedule slot creation failed", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule slot"})
			return
		}
		candidate.Subject = &subject
		c.JSON(http.StatusCreated, candidate)
		return
	}

	candidate.UpdatedAt = time.Now()
	if err := config.DB.Model(&models.ScheduleSlot{}).Where("id = ? AND user_id = ?", slotID, uid).
		Updates(map[string]interface{}{
			"subject_id":  candidate.SubjectID,
			"day_of_week": candidate.DayOfWeek,
			"start_time":  candidate.StartTime,
			"end_time":    candidate.EndTime,
			"room":        candidate.Room,
			"updated_at":  candidate.UpdatedAt,
		}).Error; err != nil {
		config.Logger.Errorw("schedule slot update failed", "error", err, "uid", uid, "slotID", slotID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule slot"})
		return
	}
	candidate.Subject = &subject
	c.JSON(http.StatusOK, candidate)
}

// DeleteSlot removes one slot.
func (sc *ScheduleController) DeleteSlot(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	result := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.ScheduleSlot{})
	if result.Error != nil {
		config.Logger.Errorw("schedule slot delete failed", "error", result.Error, "uid", uid, "slotID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule slot"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule slot not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
