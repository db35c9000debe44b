package services

import (
	"time"

	exmodels "github.com/architect/francais-pro/internal/exercises/models"
	exrepo "github.com/architect/francais-pro/internal/exercises/repository"
	"github.com/architect/francais-pro/internal/users/models"
	userrepo "github.com/architect/francais-pro/internal/users/repository"
)

// French weekday labels, Sunday first to match time.Weekday.
var dayLabels = [7]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}

// GetStatistics builds the aggregate statistics panel for a user.
func GetStatistics(userID uint) (*models.UserStatistics, error) {
	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	weekly, err := exrepo.CountSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}

	accuracy := 0
	if user.TotalExercises > 0 {
		accuracy = user.CorrectAnswers * 100 / user.TotalExercises
	}

	return &models.UserStatistics{
		TotalExercises:  user.TotalExercises,
		CorrectAnswers:  user.CorrectAnswers,
		Accuracy:        accuracy,
		WeeklyExercises: int(weekly),
		Level:           user.Level,
		XP:              user.XP,
		XPToNextLevel:   user.XPToNextLevel,
		StreakDays:      user.StreakDays,
	}, nil
}

// WeeklyActivity reports exercises and accuracy per day over the last
// seven days, oldest first.
func WeeklyActivity(userID uint) ([]models.DayActivity, error) {
	activity := make([]models.DayActivity, 0, 7)
	now := time.Now()

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)

		exercises, accuracy, err := exrepo.DayStats(userID, start, end)
		if err != nil {
			return nil, err
		}

		activity = append(activity, models.DayActivity{
			Day:       dayLabels[day.Weekday()],
			Exercises: exercises,
			Accuracy:  accuracy,
		})
	}

	return activity, nil
}

// GetProgress lists the per-module progress rows.
func GetProgress(userID uint) ([]*models.ModuleProgress, error) {
	return userrepo.GetUserProgress(userID)
}

// GetSkills lists the user's skill mastery rows, weakest first.
func GetSkills(userID uint) ([]*exmodels.UserSkill, error) {
	return exrepo.GetUserSkills(userID)
}

// GetRecentErrors lists the question texts the user recently missed in
// a module.
func GetRecentErrors(userID uint, module string, limit int) ([]string, error) {
	return exrepo.GetRecentErrors(userID, module, limit)
}
