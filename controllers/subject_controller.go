package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/utils"
)

type SubjectController struct{}

// ListSubjects returns the user's subjects in creation order.
func (sc *SubjectController) ListSubjects(c *gin.Context) {
	uid := c.GetString("uid")

	var subjects []models.Subject
	if err := config.DB.Where("user_id = ?", uid).Order("created_at ASC").Find(&subjects).Error; err != nil {
		config.Logger.Errorw("subject list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subjects"})
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// CreateSubject adds a subject.
func (sc *SubjectController) CreateSubject(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject := models.Subject{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := config.DB.Create(&subject).Error; err != nil {
		config.Logger.Errorw("subject creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subject"})
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// UpdateSubject renames or recolors a subject.
func (sc *SubjectController) UpdateSubject(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var req models.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var subject models.Subject
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&subject).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
		return
	}

	subject.Name = req.Name
	subject.Color = req.Color
	subject.UpdatedAt = time.Now()
	if err := config.DB.Save(&subject).Error; err != nil {
		config.Logger.Errorw("subject update failed", "error", err, "uid", uid, "subjectID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subject"})
		return
	}

	c.JSON(http.StatusOK, subject)
}

// DeleteSubject removes a subject together with its slots and homework
// (cascade handled at the application level, the way the rest of the diary
// does deletes).
func (sc *SubjectController) DeleteSubject(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var subject models.Subject
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&subject).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("subject_id = ? AND user_id = ?", id, uid).Delete(&models.ScheduleSlot{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
		return
	}
	if err := tx.Where("subject_id = ? AND user_id = ?", id, uid).Delete(&models.Homework{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
		return
	}
	if err := tx.Delete(&subject).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
		return
	}

	c.Status(http.StatusNoContent)
}
