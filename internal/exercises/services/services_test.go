package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	badgemodels "github.com/architect/francais-pro/internal/badges/models"
	"github.com/architect/francais-pro/internal/common/database"
	"github.com/architect/francais-pro/internal/exercises/models"
	usermodels "github.com/architect/francais-pro/internal/users/models"
)

// setupTestDB points the repository layer at a fresh in-memory SQLite.
// A single connection keeps every query on the same memory database.
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
		&usermodels.Session{},
		&usermodels.ModuleProgress{},
		&models.ExerciseRecord{},
		&models.UserSkill{},
		&badgemodels.UserBadge{},
	))

	database.DB = db
}

func seedUser(t *testing.T, classLevel string) *usermodels.User {
	t.Helper()

	user := &usermodels.User{
		Username:      "camille",
		FirstName:     "Camille",
		LastName:      "Durand",
		BirthDate:     time.Date(2012, 3, 14, 0, 0, 0, 0, time.UTC),
		ClassLevel:    classLevel,
		Age:           13,
		Email:         "camille@example.com",
		PasswordHash:  "not-a-real-hash",
		Level:         1,
		XPToNextLevel: usermodels.BaseXPPerLevel,
	}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

func seedSkill(t *testing.T, userID uint, skillID string, mastery int, lastPracticed time.Time) *models.UserSkill {
	t.Helper()

	skill := &models.UserSkill{
		UserID:        userID,
		SkillID:       skillID,
		Mastery:       mastery,
		Attempts:      5,
		Successes:     3,
		NeedsReview:   mastery < masteryReviewBar,
		LastPracticed: lastPracticed,
	}
	require.NoError(t, database.DB.Create(skill).Error)
	return skill
}

func intPtr(v int) *int { return &v }
