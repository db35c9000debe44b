package models

import (
	"time"
)

// Class levels, collège then lycée, youngest first.
const (
	ClassSixieme   = "6eme"
	ClassCinquieme = "5eme"
	ClassQuatrieme = "4eme"
	ClassTroisieme = "3eme"
	ClassSeconde   = "2nde"
	ClassPremiere  = "1ere"
	ClassTerminale = "terminale"
)

// BaseXPPerLevel is the XP required per level: reaching level n+1 costs n*300.
const BaseXPPerLevel = 300

// User represents a learner account with its aggregate stats.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	BirthDate    time.Time `gorm:"not null" json:"birth_date"`
	ClassLevel   string    `gorm:"not null" json:"class_level"`
	Age          int       `gorm:"not null" json:"age"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`

	Level          int `gorm:"default:1" json:"level"`
	XP             int `gorm:"column:xp;default:0" json:"xp"`
	XPToNextLevel  int `gorm:"column:xp_to_next_level;default:300" json:"xp_to_next_level"`
	StreakDays     int `gorm:"default:0" json:"streak_days"`
	TotalExercises int `gorm:"default:0" json:"total_exercises"`
	CorrectAnswers int `gorm:"default:0" json:"correct_answers"`

	// LastExerciseAt drives the daily streak counter.
	LastExerciseAt *time.Time `json:"last_exercise_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Session represents an authenticated session token.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ModuleProgress is the per-module aggregate for one learner.
// One row per (user, module), created at registration for all four modules.
type ModuleProgress struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_user_module" json:"user_id"`
	Module             string    `gorm:"not null;uniqueIndex:idx_user_module" json:"module"`
	Progress           int       `gorm:"default:0" json:"progress"`
	SkillLevel         int       `gorm:"default:1" json:"skill_level"`
	ExercisesCompleted int       `gorm:"default:0" json:"exercises_completed"`
	Accuracy           int       `gorm:"default:0" json:"accuracy"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=30"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	BirthDate  string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	ClassLevel string `json:"class_level" binding:"required,oneof=6eme 5eme 4eme 3eme 2nde 1ere terminale"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful register/login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest changes mutable profile fields.
type UpdateProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ClassLevel string `json:"class_level" binding:"omitempty,oneof=6eme 5eme 4eme 3eme 2nde 1ere terminale"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// UserStatistics summarizes a learner's aggregate performance.
type UserStatistics struct {
	TotalExercises  int `json:"total_exercises"`
	CorrectAnswers  int `json:"correct_answers"`
	Accuracy        int `json:"accuracy"`
	WeeklyExercises int `json:"weekly_exercises"`
	Level           int `json:"level"`
	XP              int `json:"xp"`
	XPToNextLevel   int `json:"xp_to_next_level"`
	StreakDays      int `json:"streak_days"`
}

// DayActivity is one day of the weekly activity report.
type DayActivity struct {
	Day       string `json:"day"`
	Exercises int    `json:"exercises"`
	Accuracy  int    `json:"accuracy"`
}
