package models

import (
	"time"
)

// GeneralSkillID is the sentinel skill id used by placeholder exercises
// when neither the provider nor the fallback bank can supply one.
const GeneralSkillID = "general"

// Exercise is the normalized unit handed to the client, whether it came
// from the live provider or the fallback bank.
type Exercise struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	SkillID       string   `json:"skillId,omitempty"`
}

// ExerciseRecord is the append-only log of answered or timed-out
// exercises. Never updated after insertion.
type ExerciseRecord struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Module        string     `gorm:"not null" json:"module"`
	SkillID       *string    `json:"skill_id,omitempty"`
	Question      string     `gorm:"not null" json:"question"`
	Options       string     `gorm:"not null" json:"options"` // JSON-encoded option list
	CorrectAnswer int        `gorm:"not null" json:"correct_answer"`
	UserAnswer    *int       `json:"user_answer,omitempty"` // nil = timed out
	IsCorrect     *bool      `json:"is_correct,omitempty"`  // nil = timed out
	Difficulty    string     `gorm:"not null" json:"difficulty"`
	Explanation   string     `json:"explanation"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	TimeSpentMs   int        `json:"time_spent_ms"`
	CreatedAt     time.Time  `json:"created_at"`
}

// UserSkill tracks per-skill mastery for one learner, created lazily on
// first practice of the skill.
type UserSkill struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_skill" json:"user_id"`
	SkillID       string    `gorm:"not null;uniqueIndex:idx_user_skill" json:"skill_id"`
	Mastery       int       `gorm:"default:0" json:"mastery"`
	Attempts      int       `gorm:"default:0" json:"attempts"`
	Successes     int       `gorm:"default:0" json:"successes"`
	NeedsReview   bool      `gorm:"default:true" json:"needs_review"`
	LastPracticed time.Time `json:"last_practiced"`
}

// GenerateRequest asks for one exercise or a series.
type GenerateRequest struct {
	Module      string   `json:"module" binding:"required,oneof=orthographe grammaire vocabulaire comprehension"`
	FocusSkills []string `json:"focus_skills,omitempty"`
}

// GenerateSeriesRequest asks for a fixed-length series.
type GenerateSeriesRequest struct {
	Module      string   `json:"module" binding:"required,oneof=orthographe grammaire vocabulaire comprehension"`
	Count       int      `json:"count" binding:"required,min=1,max=20"`
	FocusSkills []string `json:"focus_skills,omitempty"`
}

// SubmitRequest reports an answered or timed-out exercise.
// Answer is nil when the countdown expired without a submission.
type SubmitRequest struct {
	Module        string   `json:"module" binding:"required,oneof=orthographe grammaire vocabulaire comprehension"`
	SkillID       string   `json:"skill_id"`
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,len=4"`
	CorrectAnswer int      `json:"correct_answer" binding:"min=0,max=3"`
	Answer        *int     `json:"answer" binding:"omitempty,min=0,max=3"`
	Difficulty    string   `json:"difficulty" binding:"required,oneof=facile moyen difficile"`
	Explanation   string   `json:"explanation"`
	TimeSpentMs   int      `json:"time_spent_ms" binding:"min=0"`
}

// OutcomeSignals is what the recorder hands back for the badge and
// encouragement layers.
type OutcomeSignals struct {
	IsCorrect  *bool    `json:"is_correct"` // nil = timed out
	Points     int      `json:"points"`
	NewMastery *int     `json:"new_mastery,omitempty"`
	LeveledUp  bool     `json:"leveled_up"`
	OldLevel   int      `json:"old_level"`
	NewLevel   int      `json:"new_level"`
	StreakDays int      `json:"streak_days"`
	Accuracy   int      `json:"accuracy"` // module accuracy after this outcome
	NewBadges  []string `json:"new_badges"`
}
