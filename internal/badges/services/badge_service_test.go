package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/architect/francais-pro/internal/badges/models"
	"github.com/architect/francais-pro/internal/badges/repository"
	"github.com/architect/francais-pro/internal/common/database"
	exmodels "github.com/architect/francais-pro/internal/exercises/models"
	usermodels "github.com/architect/francais-pro/internal/users/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&usermodels.User{},
		&usermodels.ModuleProgress{},
		&exmodels.ExerciseRecord{},
		&models.UserBadge{},
	))

	database.DB = db
}

func seedUser(t *testing.T, mutate func(*usermodels.User)) *usermodels.User {
	t.Helper()

	user := &usermodels.User{
		Username:      "camille",
		FirstName:     "Camille",
		LastName:      "Durand",
		BirthDate:     time.Date(2012, 3, 14, 0, 0, 0, 0, time.UTC),
		ClassLevel:    usermodels.ClassSixieme,
		Age:           13,
		Email:         "camille@example.com",
		PasswordHash:  "not-a-real-hash",
		Level:         1,
		XPToNextLevel: usermodels.BaseXPPerLevel,
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

func seedCorrectRecords(t *testing.T, userID uint, n int) {
	t.Helper()

	correct := true
	answer := 0
	for i := 0; i < n; i++ {
		record := &exmodels.ExerciseRecord{
			UserID:        userID,
			Module:        "orthographe",
			Question:      "Question",
			Options:       `["a","b","c","d"]`,
			CorrectAnswer: 0,
			UserAnswer:    &answer,
			IsCorrect:     &correct,
			Difficulty:    "facile",
		}
		require.NoError(t, database.DB.Create(record).Error)
	}
}

func TestEvaluateAndAwardFirstExercise(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, func(u *usermodels.User) {
		u.TotalExercises = 1
	})

	badges, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.BadgeFirstExercise}, badges)
}

func TestEvaluateAndAwardNothingForFreshAccount(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, nil)

	badges, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}

func TestEvaluateAndAwardStreaks(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, func(u *usermodels.User) {
		u.TotalExercises = 5
		u.StreakDays = 7
	})

	badges, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badges, models.BadgeStreak3)
	assert.Contains(t, badges, models.BadgeStreak7)
}

func TestEvaluateAndAwardPerfectScoreCountsLifetimeCorrect(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, func(u *usermodels.User) {
		u.TotalExercises = 20
		u.CorrectAnswers = 10
	})
	seedCorrectRecords(t, user.ID, 10)

	badges, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badges, models.BadgePerfectScore)
}

func TestEvaluateAndAwardCenturyClub(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, func(u *usermodels.User) {
		u.TotalExercises = 100
	})

	badges, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badges, models.BadgeCenturyClub)
}

func TestEvaluateAndAwardModuleMaster(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, func(u *usermodels.User) {
		u.TotalExercises = 30
	})
	progress := &usermodels.ModuleProgress{
		UserID:     user.ID,
		Module:     "grammaire",
		Progress:   60,
		SkillLevel: 3,
	}
	require.NoError(t, database.DB.Create(progress).Error)

	badges, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badges, "grammaire-master")
}

func TestEvaluateAndAwardIsIdempotent(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, func(u *usermodels.User) {
		u.TotalExercises = 100
		u.StreakDays = 7
	})

	first, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := EvaluateAndAward(user.ID)
	require.NoError(t, err)
	assert.Empty(t, second, "unchanged state must not re-award badges")

	stored, err := repository.GetBadgeIDs(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, first, stored)
}
