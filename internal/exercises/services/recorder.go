package services

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	badgeservices "github.com/architect/francais-pro/internal/badges/services"
	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/exercises/models"
	"github.com/architect/francais-pro/internal/exercises/repository"
	usermodels "github.com/architect/francais-pro/internal/users/models"
	userrepo "github.com/architect/francais-pro/internal/users/repository"
	"github.com/architect/francais-pro/pkg/logger"
)

const (
	pointsPerCorrect = 20

	masteryGain = 10
	masteryLoss = 5

	// masteryReviewBar is the mastery below which a skill stays flagged
	// for review.
	masteryReviewBar = 80
)

// RecordOutcome persists an answered or timed-out exercise and applies
// every downstream update: skill mastery, XP and level, streak, module
// progress, badge evaluation. One call per exercise; not idempotent.
//
// A timed-out exercise (nil answer) is recorded for history but leaves
// mastery, XP, streak and progress untouched.
func RecordOutcome(userID uint, req models.SubmitRequest) (*models.OutcomeSignals, error) {
	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var isCorrect *bool
	if req.Answer != nil {
		v := *req.Answer == req.CorrectAnswer
		isCorrect = &v
	}

	if err := saveRecord(userID, req, isCorrect, now); err != nil {
		return nil, err
	}

	signals := &models.OutcomeSignals{
		IsCorrect: isCorrect,
		OldLevel:  user.Level,
		NewLevel:  user.Level,
	}

	if isCorrect == nil {
		signals.StreakDays = user.StreakDays
		return signals, nil
	}

	correct := *isCorrect

	if req.SkillID != "" && catalog.ByID(req.SkillID) != nil {
		mastery, err := updateMastery(userID, req.SkillID, correct, now)
		if err != nil {
			return nil, err
		}
		signals.NewMastery = &mastery
	}

	points := 0
	if correct {
		points = pointsPerCorrect
	}
	signals.Points = points

	updateUserAggregates(user, correct, points, now)
	signals.LeveledUp = user.Level > signals.OldLevel
	signals.NewLevel = user.Level
	signals.StreakDays = user.StreakDays

	if err := userrepo.SaveUser(user); err != nil {
		return nil, err
	}

	accuracy, err := updateModuleProgress(userID, req.Module, points)
	if err != nil {
		return nil, err
	}
	signals.Accuracy = accuracy

	newBadges, err := badgeservices.EvaluateAndAward(userID)
	if err != nil {
		// Badge state can be re-derived on the next outcome; the
		// exercise result itself is already committed.
		logger.Warn("badge evaluation failed after outcome",
			zap.Uint("user_id", userID), zap.Error(err))
		newBadges = []string{}
	}
	signals.NewBadges = newBadges

	return signals, nil
}

func saveRecord(userID uint, req models.SubmitRequest, isCorrect *bool, now time.Time) error {
	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return err
	}

	record := &models.ExerciseRecord{
		UserID:        userID,
		Module:        req.Module,
		Question:      req.Question,
		Options:       string(optionsJSON),
		CorrectAnswer: req.CorrectAnswer,
		UserAnswer:    req.Answer,
		IsCorrect:     isCorrect,
		Difficulty:    req.Difficulty,
		Explanation:   req.Explanation,
		TimeSpentMs:   req.TimeSpentMs,
	}
	if req.SkillID != "" {
		record.SkillID = &req.SkillID
	}
	if isCorrect != nil {
		completed := now
		record.CompletedAt = &completed
	}

	return repository.SaveRecord(record)
}

// updateMastery applies one graded outcome to the user's skill row,
// creating it on first practice. Returns the new mastery value.
func updateMastery(userID uint, skillID string, correct bool, now time.Time) (int, error) {
	skill, err := repository.GetSkill(userID, skillID)
	if err != nil {
		return 0, err
	}

	if skill == nil {
		mastery := 0
		successes := 0
		if correct {
			mastery = masteryGain
			successes = 1
		}
		skill = &models.UserSkill{
			UserID:        userID,
			SkillID:       skillID,
			Mastery:       mastery,
			Attempts:      1,
			Successes:     successes,
			NeedsReview:   mastery < masteryReviewBar,
			LastPracticed: now,
		}
		if err := repository.CreateSkill(skill); err != nil {
			return 0, err
		}
		return skill.Mastery, nil
	}

	skill.Attempts++
	if correct {
		skill.Successes++
		skill.Mastery += masteryGain
		if skill.Mastery > 100 {
			skill.Mastery = 100
		}
	} else {
		skill.Mastery -= masteryLoss
		if skill.Mastery < 0 {
			skill.Mastery = 0
		}
	}
	skill.NeedsReview = skill.Mastery < masteryReviewBar
	skill.LastPracticed = now

	if err := repository.SaveSkill(skill); err != nil {
		return 0, err
	}
	return skill.Mastery, nil
}

// updateUserAggregates mutates the user in place: totals, XP, level and
// daily streak. XP is cumulative; levelling up raises the bar to
// newLevel*300 without deducting earned XP.
func updateUserAggregates(user *usermodels.User, correct bool, points int, now time.Time) {
	user.TotalExercises++
	if correct {
		user.CorrectAnswers++
	}

	user.XP += points
	if user.XP >= user.XPToNextLevel {
		user.Level++
		user.XPToNextLevel = user.Level * usermodels.BaseXPPerLevel
	}

	updateStreak(user, now)
}

// updateStreak maintains the calendar-day streak: unchanged within the
// same day, incremented when the last exercise was yesterday, reset to 1
// after any gap.
func updateStreak(user *usermodels.User, now time.Time) {
	today := startOfDay(now)

	switch {
	case user.LastExerciseAt == nil:
		user.StreakDays = 1
	case startOfDay(user.LastExerciseAt.In(now.Location())).Equal(today):
		// already practiced today
	case startOfDay(user.LastExerciseAt.In(now.Location())).Equal(today.AddDate(0, 0, -1)):
		user.StreakDays++
	default:
		user.StreakDays = 1
	}

	last := now
	user.LastExerciseAt = &last
}

// startOfDay returns midnight of t's calendar day in t's location. The
// same bucketing is used by the weekly activity report, so streaks and
// activity agree on what counts as a day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// skillLevelForProgress derives the 1..5 module skill level from the
// progress percentage.
func skillLevelForProgress(progress int) int {
	level := 1 + progress/25
	if level > 5 {
		level = 5
	}
	return level
}

// updateModuleProgress applies one graded outcome to the module's
// progress row, creating it when the account predates the module.
// Returns the recomputed module accuracy.
func updateModuleProgress(userID uint, module string, points int) (int, error) {
	progress, err := userrepo.GetModuleProgress(userID, module)
	if err != nil {
		return 0, err
	}
	if progress == nil {
		progress = &usermodels.ModuleProgress{
			UserID:     userID,
			Module:     module,
			SkillLevel: 1,
		}
	}

	progress.Progress += points / 10
	if progress.Progress > 100 {
		progress.Progress = 100
	}
	progress.ExercisesCompleted++
	progress.SkillLevel = skillLevelForProgress(progress.Progress)

	accuracy, err := repository.ModuleAccuracy(userID, module)
	if err != nil {
		return 0, err
	}
	progress.Accuracy = accuracy

	if err := userrepo.SaveModuleProgress(progress); err != nil {
		return 0, err
	}
	return accuracy, nil
}
