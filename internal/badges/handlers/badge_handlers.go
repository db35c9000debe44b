package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/francais-pro/internal/badges/repository"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/common/middleware"
)

// GetBadges lists the caller's earned badges
func GetBadges(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	badges, err := repository.GetBadges(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}
