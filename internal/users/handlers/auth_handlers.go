package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/common/middleware"
	"github.com/architect/francais-pro/internal/users/models"
	"github.com/architect/francais-pro/internal/users/services"
)

const sessionCookieMaxAge = 30 * 24 * 3600

// Register creates an account and opens a session
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	resp, err := services.Register(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates and opens a session
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	resp, err := services.Login(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Logout closes the caller's sessions
func Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	if err := services.Logout(userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("session_id", token, sessionCookieMaxAge, "/", "", false, true)
}
