package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/services"
	"github.com/Yarik8706/smart-school-diary-hackathon/utils"
)

type HomeworkController struct {
	planner   *services.PlannerService
	materials *services.MaterialsService
}

func NewHomeworkController(planner *services.PlannerService, materials *services.MaterialsService) *HomeworkController {
	return &HomeworkController{planner: planner, materials: materials}
}

func preloadHomework(db *gorm.DB) *gorm.DB {
	return db.Preload("Subject").Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_order ASC")
	})
}

// fillProgress derives the completed-step percentage on loaded homework.
func fillProgress(items []models.Homework) {
	for i := range items {
		items[i].Progress = derive.StepsProgress(items[i].Steps)
	}
}

// ListHomework returns homework ordered by deadline. SQL-side query filters:
// subject_id, is_completed, deadline_from, deadline_to. The status and
// deadline (week/month) filters are derived against the loaded snapshot.
func (hc *HomeworkController) ListHomework(c *gin.Context) {
	uid := c.GetString("uid")

	query := preloadHomework(config.DB).Where("user_id = ?", uid)
	if subjectID := c.Query("subject_id"); subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}
	if completed := c.Query("is_completed"); completed != "" {
		query = query.Where("is_completed = ?", completed == "true")
	}
	if from := c.Query("deadline_from"); from != "" {
		query = query.Where("deadline >= ?", from)
	}
	if to := c.Query("deadline_to"); to != "" {
		query = query.Where("deadline <= ?", to)
	}

	var items []models.Homework
	if err := query.Order("deadline ASC").Find(&items).Error; err != nil {
		config.Logger.Errorw("homework list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load homework"})
		return
	}

	items = derive.FilterHomework(items, derive.HomeworkFilters{
		Status:   c.Query("status"),
		Deadline: c.Query("deadline"),
	}, time.Now())
	fillProgress(items)

	c.JSON(http.StatusOK, items)
}

// GetHomework returns one homework with its steps.
func (hc *HomeworkController) GetHomework(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var item models.Homework
	if err := preloadHomework(config.DB).Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	item.Progress = derive.StepsProgress(item.Steps)
	c.JSON(http.StatusOK, item)
}

// CreateHomework validates the title and the deadline before any write.
func (hc *HomeworkController) CreateHomework(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.HomeworkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title must not be empty"})
		return
	}
	if derive.ParseWhen(req.Deadline).IsZero() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "deadline is not a valid date"})
		return
	}
	if derive.IsPastDeadline(req.Deadline, time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "deadline must not be in the past"})
		return
	}

	var subject models.Subject
	if err := config.DB.Where("id = ? AND user_id = ?", req.SubjectID, uid).First(&subject).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
		return
	}

	item := models.Homework{
		ID:          utils.GenerateID(),
		UserID:      uid,
		SubjectID:   req.SubjectID,
		Title:       title,
		Description: req.Description,
		Deadline:    req.Deadline,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		config.Logger.Errorw("homework creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create homework"})
		return
	}

	item.Subject = &subject
	c.JSON(http.StatusCreated, item)
}

// UpdateHomework applies partial changes with the same validation rules.
func (hc *HomeworkController) UpdateHomework(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var req models.HomeworkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.Homework
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title must not be empty"})
			return
		}
		item.Title = title
	}
	if req.Deadline != nil {
		if derive.ParseWhen(*req.Deadline).IsZero() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "deadline is not a valid date"})
			return
		}
		if derive.IsPastDeadline(*req.Deadline, time.Now()) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "deadline must not be in the past"})
			return
		}
		item.Deadline = *req.Deadline
	}
	if req.SubjectID != nil {
		var subject models.Subject
		if err := config.DB.Where("id = ? AND user_id = ?", *req.SubjectID, uid).First(&subject).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		item.SubjectID = *req.SubjectID
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.IsCompleted != nil {
		item.IsCompleted = *req.IsCompleted
		if *req.IsCompleted {
			now := time.Now()
			item.CompletedAt = &now
		} else {
			item.CompletedAt = nil
		}
	}
	item.UpdatedAt = time.Now()

	if err := config.DB.Save(&item).Error; err != nil {
		config.Logger.Errorw("homework update failed", "error", err, "uid", uid, "homeworkID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update homework"})
		return
	}

	var saved models.Homework
	if err := preloadHomework(config.DB).Where("id = ?", item.ID).First(&saved).Error; err == nil {
		item = saved
	}
	item.Progress = derive.StepsProgress(item.Steps)
	c.JSON(http.StatusOK, item)
}

// DeleteHomework removes the homework with its steps and reminders.
func (hc *HomeworkController) DeleteHomework(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var item models.Homework
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("homework_id = ?", id).Delete(&models.HomeworkStep{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete homework"})
		return
	}
	if err := tx.Where("homework_id = ?", id).Delete(&models.Reminder{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete homework"})
		return
	}
	if err := tx.Delete(&item).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete homework"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete homework"})
		return
	}

	c.Status(http.StatusNoContent)
}

// CompleteHomework marks the homework done.
func (hc *HomeworkController) CompleteHomework(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var item models.Homework
	if err := preloadHomework(config.DB).Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	now := time.Now()
	item.IsCompleted = true
	item.CompletedAt = &now
	item.UpdatedAt = now
	if err := config.DB.Save(&item).Error; err != nil {
		config.Logger.Errorw("homework complete failed", "error", err, "uid", uid, "homeworkID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update homework"})
		return
	}

	item.Progress = derive.StepsProgress(item.Steps)
	c.JSON(http.StatusOK, item)
}

// GenerateSteps asks the planner for a breakdown and replaces the stored one.
func (hc *HomeworkController) GenerateSteps(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var item models.Homework
	if err := config.DB.Preload("Subject").Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	subjectName := ""
	if item.Subject != nil {
		subjectName = item.Subject.Name
	}
	generated, err := hc.planner.GenerateSteps(c.Request.Context(), item.Title, item.Description, subjectName, item.Deadline)
	if err != nil {
		if errors.Is(err, services.ErrPlannerUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "smart planner is unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate steps"})
		return
	}

	steps := make([]models.HomeworkStep, 0, len(generated))
	for _, step := range generated {
		steps = append(steps, models.HomeworkStep{
			ID:          utils.GenerateID(),
			HomeworkID:  item.ID,
			Title:       step.Title,
			Order:       step.Order,
			CreatedAt:   time.Now(),
			IsCompleted: false,
		})
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("homework_id = ?", item.ID).Delete(&models.HomeworkStep{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save steps"})
		return
	}
	if len(steps) > 0 {
		if err := tx.Create(&steps).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save steps"})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save steps"})
		return
	}

	c.JSON(http.StatusOK, models.GenerateStepsResponse{Steps: steps, Count: len(steps)})
}

// ToggleStep flips one step's completion flag.
func (hc *HomeworkController) ToggleStep(c *gin.Context) {
	uid := c.GetString("uid")
	stepID := c.Param("id")

	var step models.HomeworkStep
	if err := config.DB.
		Joins("JOIN homeworks ON homeworks.id = homework_steps.homework_id").
		Where("homework_steps.id = ? AND homeworks.user_id = ?", stepID, uid).
		First(&step).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework step not found"})
		return
	}

	step.IsCompleted = !step.IsCompleted
	if err := config.DB.Model(&models.HomeworkStep{}).Where("id = ?", step.ID).
		Update("is_completed", step.IsCompleted).Error; err != nil {
		config.Logger.Errorw("step toggle failed", "error", err, "uid", uid, "stepID", stepID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update step"})
		return
	}

	c.JSON(http.StatusOK, step)
}

// Materials asks the assistant for resources matching the homework topic.
func (hc *HomeworkController) Materials(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var item models.Homework
	if err := config.DB.Preload("Subject").Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "homework not found"})
		return
	}

	subjectName := ""
	if item.Subject != nil {
		subjectName = item.Subject.Name
	}
	c.JSON(http.StatusOK, hc.materials.Search(c.Request.Context(), item.Title, item.Description, subjectName))
}
