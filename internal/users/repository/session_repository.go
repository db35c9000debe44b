package repository

import (
	"time"

	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/users/models"
	"gorm.io/gorm"
)

// CreateSession inserts a new session token
func CreateSession(session *models.Session) error {
	result := database.DB.Create(session)
	if result.Error != nil {
		return errors.Internal("failed to create session", result.Error.Error())
	}
	return nil
}

// GetSessionByToken retrieves a non-expired session, nil if none exists
func GetSessionByToken(token string) (*models.Session, error) {
	var session models.Session
	result := database.DB.
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch session", result.Error.Error())
	}
	return &session, nil
}

// DeleteSessionsByUser removes every session belonging to a user
func DeleteSessionsByUser(userID uint) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.Session{})
	if result.Error != nil {
		return errors.Internal("failed to delete sessions", result.Error.Error())
	}
	return nil
}
