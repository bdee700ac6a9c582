package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
	"github.com/Yarik8706/smart-school-diary-hackathon/utils"
)

// AuthController issues guest accounts. The diary has no passwords: every
// device gets its own user and a long-lived token.
type AuthController struct{}

type guestLoginRequest struct {
	Username string `json:"username"`
}

// GuestLogin creates a user and returns a JWT for it.
func (ac *AuthController) GuestLogin(c *gin.Context) {
	var req guestLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:        utils.GenerateID(),
		Username:  req.Username,
		CreatedAt: time.Now(),
	}
	if user.Username == "" {
		user.Username = fmt.Sprintf("student-%s", user.ID[:8])
	}

	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("guest user creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: user})
}
