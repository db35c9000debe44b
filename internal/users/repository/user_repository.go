package repository

import (
	"time"

	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/users/models"
	"gorm.io/gorm"
)

// CreateUser inserts a new user row
func CreateUser(user *models.User) error {
	result := database.DB.Create(user)
	if result.Error != nil {
		return errors.Internal("failed to create user", result.Error.Error())
	}
	return nil
}

// GetUserByID retrieves a user by primary key
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	result := database.DB.First(&user, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user")
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, nil if none exists
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username, nil if none exists
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}
	return &user, nil
}

// SaveUser persists all fields of an existing user
func SaveUser(user *models.User) error {
	result := database.DB.Save(user)
	if result.Error != nil {
		return errors.Internal("failed to update user", result.Error.Error())
	}
	return nil
}

// TouchLastLogin stamps the user's last login time
func TouchLastLogin(userID uint) error {
	now := time.Now()
	result := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_login", now)
	if result.Error != nil {
		return errors.Internal("failed to update last login", result.Error.Error())
	}
	return nil
}

// DeleteUser removes the user row. Dependent rows are removed by the
// owning repositories before this is called.
func DeleteUser(userID uint) error {
	result := database.DB.Delete(&models.User{}, userID)
	if result.Error != nil {
		return errors.Internal("failed to delete user", result.Error.Error())
	}
	return nil
}
