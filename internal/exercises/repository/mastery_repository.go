package repository

import (
	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/exercises/models"
	"gorm.io/gorm"
)

// GetSkill retrieves the mastery row for one (user, skill) pair,
// nil if the skill has never been practiced
func GetSkill(userID uint, skillID string) (*models.UserSkill, error) {
	var skill models.UserSkill
	result := database.DB.
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&skill)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch skill mastery", result.Error.Error())
	}
	return &skill, nil
}

// CreateSkill inserts a new mastery row
func CreateSkill(skill *models.UserSkill) error {
	result := database.DB.Create(skill)
	if result.Error != nil {
		return errors.Internal("failed to create skill mastery", result.Error.Error())
	}
	return nil
}

// SaveSkill persists all fields of an existing mastery row
func SaveSkill(skill *models.UserSkill) error {
	result := database.DB.Save(skill)
	if result.Error != nil {
		return errors.Internal("failed to update skill mastery", result.Error.Error())
	}
	return nil
}

// GetUserSkills retrieves all mastery rows for a user, weakest first
func GetUserSkills(userID uint) ([]*models.UserSkill, error) {
	var skills []*models.UserSkill
	result := database.DB.
		Where("user_id = ?", userID).
		Order("needs_review DESC, mastery ASC").
		Find(&skills)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch user skills", result.Error.Error())
	}
	return skills, nil
}

// GetWeakSkills retrieves up to limit weak mastery rows for a user,
// optionally restricted to the given skill ids. A skill is weak when its
// mastery is below 70 or it is flagged for review. Ordered by mastery
// ascending, then oldest-practiced first.
func GetWeakSkills(userID uint, skillIDs []string, limit int) ([]*models.UserSkill, error) {
	query := database.DB.
		Where("user_id = ? AND (mastery < ? OR needs_review = ?)", userID, 70, true)
	if len(skillIDs) > 0 {
		query = query.Where("skill_id IN ?", skillIDs)
	}

	var skills []*models.UserSkill
	result := query.
		Order("mastery ASC, last_practiced ASC").
		Limit(limit).
		Find(&skills)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch weak skills", result.Error.Error())
	}
	return skills, nil
}

// DeleteSkillsByUser removes every mastery row belonging to a user
func DeleteSkillsByUser(userID uint) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.UserSkill{})
	if result.Error != nil {
		return errors.Internal("failed to delete skill mastery", result.Error.Error())
	}
	return nil
}
