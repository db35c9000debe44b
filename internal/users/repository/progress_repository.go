package repository

import (
	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/users/models"
	"gorm.io/gorm"
)

// CreateModuleProgress inserts one progress row
func CreateModuleProgress(progress *models.ModuleProgress) error {
	result := database.DB.Create(progress)
	if result.Error != nil {
		return errors.Internal("failed to create module progress", result.Error.Error())
	}
	return nil
}

// GetUserProgress retrieves all module progress rows for a user
func GetUserProgress(userID uint) ([]*models.ModuleProgress, error) {
	var progress []*models.ModuleProgress
	result := database.DB.
		Where("user_id = ?", userID).
		Order("module ASC").
		Find(&progress)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch user progress", result.Error.Error())
	}
	return progress, nil
}

// GetModuleProgress retrieves one (user, module) row, nil if none exists
func GetModuleProgress(userID uint, module string) (*models.ModuleProgress, error) {
	var progress models.ModuleProgress
	result := database.DB.
		Where("user_id = ? AND module = ?", userID, module).
		First(&progress)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch module progress", result.Error.Error())
	}
	return &progress, nil
}

// SaveModuleProgress persists all fields of an existing progress row
func SaveModuleProgress(progress *models.ModuleProgress) error {
	result := database.DB.Save(progress)
	if result.Error != nil {
		return errors.Internal("failed to update module progress", result.Error.Error())
	}
	return nil
}

// ResetUserProgress zeroes all module progress rows for a user
func ResetUserProgress(userID uint) error {
	result := database.DB.Model(&models.ModuleProgress{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"progress":            0,
			"skill_level":         1,
			"exercises_completed": 0,
			"accuracy":            0,
		})
	if result.Error != nil {
		return errors.Internal("failed to reset module progress", result.Error.Error())
	}
	return nil
}

// DeleteProgressByUser removes every progress row belonging to a user
func DeleteProgressByUser(userID uint) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.ModuleProgress{})
	if result.Error != nil {
		return errors.Internal("failed to delete module progress", result.Error.Error())
	}
	return nil
}
