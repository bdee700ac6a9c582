package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/services"
)

type DashboardController struct{}

// Summary combines homework, schedule, subjects and warnings into the
// dashboard projection. If any snapshot fails to load, the whole summary
// degrades to the empty default with one aggregate error.
func (dc *DashboardController) Summary(c *gin.Context) {
	uid := c.GetString("uid")

	var homework []models.Homework
	if err := config.DB.Where("user_id = ?", uid).Find(&homework).Error; err != nil {
		dc.fail(c, err)
		return
	}

	var slots []models.ScheduleSlot
	if err := config.DB.Where("user_id = ?", uid).Find(&slots).Error; err != nil {
		dc.fail(c, err)
		return
	}

	var subjects []models.Subject
	if err := config.DB.Where("user_id = ?", uid).Find(&subjects).Error; err != nil {
		dc.fail(c, err)
		return
	}

	warnings, err := services.OverloadWarnings(config.DB, uid)
	if err != nil {
		dc.fail(c, err)
		return
	}

	summary := derive.BuildSummary(homework, slots, subjects, warnings, time.Now())
	c.JSON(http.StatusOK, summary)
}

func (dc *DashboardController) fail(c *gin.Context, err error) {
	config.Logger.Errorw("dashboard summary failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Не удалось загрузить сводку дашборда.",
		"summary": derive.EmptySummary(),
	})
}
