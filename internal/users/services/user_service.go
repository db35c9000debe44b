package services

import (
	"github.com/architect/francais-pro/internal/badges/repository"
	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/common/errors"
	exrepo "github.com/architect/francais-pro/internal/exercises/repository"
	"github.com/architect/francais-pro/internal/users/models"
	userrepo "github.com/architect/francais-pro/internal/users/repository"
)

// GetProfile returns the user by id.
func GetProfile(userID uint) (*models.User, error) {
	return userrepo.GetUserByID(userID)
}

// UpdateProfile applies the mutable profile fields. Empty fields are
// left unchanged.
func UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := userrepo.GetUserByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.Conflict("email already registered")
		}
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.ClassLevel != "" {
		user.ClassLevel = req.ClassLevel
	}

	if err := userrepo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetProgress puts the account back in its freshly-registered state:
// aggregates zeroed, progress rows reset (and recreated when missing),
// exercise history, skills and badges wiped. Sessions survive.
func ResetProgress(userID uint) error {
	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	user.Level = 1
	user.XP = 0
	user.XPToNextLevel = models.BaseXPPerLevel
	user.StreakDays = 0
	user.TotalExercises = 0
	user.CorrectAnswers = 0
	user.LastExerciseAt = nil
	if err := userrepo.SaveUser(user); err != nil {
		return err
	}

	if err := userrepo.ResetUserProgress(userID); err != nil {
		return err
	}
	for _, module := range catalog.Categories() {
		existing, err := userrepo.GetModuleProgress(userID, string(module))
		if err != nil {
			return err
		}
		if existing == nil {
			progress := &models.ModuleProgress{
				UserID:     userID,
				Module:     string(module),
				SkillLevel: 1,
			}
			if err := userrepo.CreateModuleProgress(progress); err != nil {
				return err
			}
		}
	}

	if err := exrepo.DeleteRecordsByUser(userID); err != nil {
		return err
	}
	if err := exrepo.DeleteSkillsByUser(userID); err != nil {
		return err
	}
	return repository.DeleteBadgesByUser(userID)
}

// DeleteAccount removes the user and everything attached to it.
func DeleteAccount(userID uint) error {
	if err := exrepo.DeleteRecordsByUser(userID); err != nil {
		return err
	}
	if err := exrepo.DeleteSkillsByUser(userID); err != nil {
		return err
	}
	if err := repository.DeleteBadgesByUser(userID); err != nil {
		return err
	}
	if err := userrepo.DeleteProgressByUser(userID); err != nil {
		return err
	}
	if err := userrepo.DeleteSessionsByUser(userID); err != nil {
		return err
	}
	return userrepo.DeleteUser(userID)
}
