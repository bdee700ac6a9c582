package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/derive"
	"github.com/Yarik8706/smart-school-diary-hackathon/services"
)

// Analytics answers change slowly, so they sit in Redis for a short TTL.
const analyticsCacheTTL = 5 * time.Minute

type AnalyticsController struct{}

func analyticsCacheKey(kind, uid string) string {
	return fmt.Sprintf("analytics:%s:%s", kind, uid)
}

func readCache(c *gin.Context, key string, target interface{}) bool {
	if config.RedisClient == nil {
		return false
	}
	cached, err := config.RedisClient.Get(c.Request.Context(), key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), target) == nil
}

func writeCache(c *gin.Context, key string, value interface{}) {
	if config.RedisClient == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(c.Request.Context(), key, payload, analyticsCacheTTL).Err(); err != nil {
		config.Logger.Debugw("analytics cache write failed", "error", err, "key", key)
	}
}

// WeekLoad returns the per-day load analysis for the whole week.
func (ac *AnalyticsController) WeekLoad(c *gin.Context) {
	uid := c.GetString("uid")

	key := analyticsCacheKey("load", uid)
	var cached derive.WeekLoad
	if readCache(c, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	week, err := services.AnalyzeWeekLoad(config.DB, uid)
	if err != nil {
		config.Logger.Errorw("week load analysis failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze week load"})
		return
	}

	writeCache(c, key, week)
	c.JSON(http.StatusOK, week)
}

// TodayLoad returns the analysis of the current weekday.
func (ac *AnalyticsController) TodayLoad(c *gin.Context) {
	uid := c.GetString("uid")

	day := int(time.Now().Weekday())
	if day == 0 {
		day = 7
	}

	key := analyticsCacheKey(fmt.Sprintf("today:%d", day), uid)
	var cached derive.WeekLoadDay
	if readCache(c, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	analysis, err := services.AnalyzeDayLoad(config.DB, uid, day)
	if err != nil {
		config.Logger.Errorw("day load analysis failed", "error", err, "uid", uid, "day", day)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze day load"})
		return
	}

	writeCache(c, key, analysis)
	c.JSON(http.StatusOK, analysis)
}

// Warnings returns the overload warning lines of the week.
func (ac *AnalyticsController) Warnings(c *gin.Context) {
	uid := c.GetString("uid")

	key := analyticsCacheKey("warnings", uid)
	var cached struct {
		Warnings []string `json:"warnings"`
	}
	if readCache(c, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	warnings, err := services.OverloadWarnings(config.DB, uid)
	if err != nil {
		config.Logger.Errorw("warnings analysis failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze warnings"})
		return
	}

	cached.Warnings = warnings
	writeCache(c, key, cached)
	c.JSON(http.StatusOK, cached)
}
