package repository

import (
	"time"

	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/exercises/models"
	"gorm.io/gorm"
)

// SaveRecord appends one exercise record to the log
func SaveRecord(record *models.ExerciseRecord) error {
	result := database.DB.Create(record)
	if result.Error != nil {
		return errors.Internal("failed to save exercise record", result.Error.Error())
	}
	return nil
}

// GetUserRecords retrieves a user's exercise log, newest first,
// optionally filtered to one module
func GetUserRecords(userID uint, module string) ([]*models.ExerciseRecord, error) {
	query := database.DB.Where("user_id = ?", userID)
	if module != "" {
		query = query.Where("module = ?", module)
	}

	var records []*models.ExerciseRecord
	result := query.Order("created_at DESC").Find(&records)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch exercise records", result.Error.Error())
	}
	return records, nil
}

// GetRecentErrors returns the question texts of the user's most recent
// incorrect answers, optionally filtered to one module
func GetRecentErrors(userID uint, module string, limit int) ([]string, error) {
	query := database.DB.Model(&models.ExerciseRecord{}).
		Where("user_id = ? AND is_correct = ?", userID, false)
	if module != "" {
		query = query.Where("module = ?", module)
	}

	var questions []string
	result := query.
		Order("created_at DESC").
		Limit(limit).
		Pluck("question", &questions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch recent errors", result.Error.Error())
	}
	return questions, nil
}

// CountCorrect returns the user's lifetime count of correct answers
func CountCorrect(userID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ExerciseRecord{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count correct answers", result.Error.Error())
	}
	return count, nil
}

// ModuleAccuracy recomputes a user's accuracy percentage over the graded
// (non-timeout) exercises of one module
func ModuleAccuracy(userID uint, module string) (int, error) {
	var graded, correct int64

	result := database.DB.Model(&models.ExerciseRecord{}).
		Where("user_id = ? AND module = ? AND is_correct IS NOT NULL", userID, module).
		Count(&graded)
	if result.Error != nil {
		return 0, errors.Internal("failed to count graded exercises", result.Error.Error())
	}
	if graded == 0 {
		return 0, nil
	}

	result = database.DB.Model(&models.ExerciseRecord{}).
		Where("user_id = ? AND module = ? AND is_correct = ?", userID, module, true).
		Count(&correct)
	if result.Error != nil {
		return 0, errors.Internal("failed to count correct exercises", result.Error.Error())
	}

	return int(correct * 100 / graded), nil
}

// CountSince counts a user's exercises recorded at or after the given time
func CountSince(userID uint, since time.Time) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ExerciseRecord{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count exercises", result.Error.Error())
	}
	return count, nil
}

// DayStats returns the exercise count and accuracy for one calendar day
func DayStats(userID uint, dayStart, dayEnd time.Time) (int, int, error) {
	var total, correct int64

	base := database.DB.Model(&models.ExerciseRecord{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, errors.Internal("failed to count day exercises", err.Error())
	}
	if total == 0 {
		return 0, 0, nil
	}

	if err := base.Session(&gorm.Session{}).Where("is_correct = ?", true).Count(&correct).Error; err != nil {
		return 0, 0, errors.Internal("failed to count day correct answers", err.Error())
	}

	return int(total), int(correct * 100 / total), nil
}

// DeleteRecordsByUser wipes a user's exercise log
func DeleteRecordsByUser(userID uint) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.ExerciseRecord{})
	if result.Error != nil {
		return errors.Internal("failed to delete exercise records", result.Error.Error())
	}
	return nil
}
