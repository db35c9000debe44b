package services

import (
	"github.com/architect/francais-pro/internal/badges/models"
	"github.com/architect/francais-pro/internal/badges/repository"
	exercisesrepo "github.com/architect/francais-pro/internal/exercises/repository"
	usersrepo "github.com/architect/francais-pro/internal/users/repository"
)

// Badge rule thresholds.
const (
	firstExerciseThreshold = 1
	streak3Threshold       = 3
	streak7Threshold       = 7
	// accuracyBadgeThreshold counts lifetime correct answers, not a
	// consecutive streak.
	accuracyBadgeThreshold = 10
	centuryThreshold       = 100
	moduleMasterLevel      = 3
)

// EvaluateAndAward scans the user's aggregate stats and module progress
// and awards every newly-qualified badge. Each rule checks current
// holdings through the unique (user, badge) constraint, so repeated calls
// with unchanged state award nothing. Returns only the badge ids newly
// inserted by this call.
func EvaluateAndAward(userID uint) ([]string, error) {
	user, err := usersrepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	newBadges := []string{}

	award := func(badgeID string) error {
		inserted, err := repository.AddBadge(userID, badgeID)
		if err != nil {
			return err
		}
		if inserted {
			newBadges = append(newBadges, badgeID)
		}
		return nil
	}

	if user.TotalExercises >= firstExerciseThreshold {
		if err := award(models.BadgeFirstExercise); err != nil {
			return nil, err
		}
	}

	if user.StreakDays >= streak3Threshold {
		if err := award(models.BadgeStreak3); err != nil {
			return nil, err
		}
	}

	if user.StreakDays >= streak7Threshold {
		if err := award(models.BadgeStreak7); err != nil {
			return nil, err
		}
	}

	correctCount, err := exercisesrepo.CountCorrect(userID)
	if err != nil {
		return nil, err
	}
	if correctCount >= accuracyBadgeThreshold {
		if err := award(models.BadgePerfectScore); err != nil {
			return nil, err
		}
	}

	if user.TotalExercises >= centuryThreshold {
		if err := award(models.BadgeCenturyClub); err != nil {
			return nil, err
		}
	}

	progress, err := usersrepo.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range progress {
		if p.SkillLevel >= moduleMasterLevel {
			if err := award(models.ModuleMasterBadge(p.Module)); err != nil {
				return nil, err
			}
		}
	}

	return newBadges, nil
}
