package repository

import (
	"github.com/architect/francais-pro/internal/badges/models"
	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/common/errors"
	"gorm.io/gorm/clause"
)

// GetBadgeIDs retrieves the ids of all badges a user holds
func GetBadgeIDs(userID uint) ([]string, error) {
	var ids []string
	result := database.DB.Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Pluck("badge_id", &ids)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch badges", result.Error.Error())
	}
	return ids, nil
}

// GetBadges retrieves a user's badge rows, oldest first
func GetBadges(userID uint) ([]*models.UserBadge, error) {
	var badges []*models.UserBadge
	result := database.DB.
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&badges)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch badges", result.Error.Error())
	}
	return badges, nil
}

// AddBadge awards a badge. Returns true when the badge was newly
// inserted, false when the user already held it.
func AddBadge(userID uint, badgeID string) (bool, error) {
	badge := &models.UserBadge{UserID: userID, BadgeID: badgeID}
	result := database.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(badge)
	if result.Error != nil {
		return false, errors.Internal("failed to award badge", result.Error.Error())
	}
	return result.RowsAffected > 0, nil
}

// DeleteBadgesByUser removes every badge belonging to a user
func DeleteBadgesByUser(userID uint) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.UserBadge{})
	if result.Error != nil {
		return errors.Internal("failed to delete badges", result.Error.Error())
	}
	return nil
}
