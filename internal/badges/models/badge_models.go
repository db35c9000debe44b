package models

import "time"

// Badge ids awarded by the evaluator.
const (
	BadgeFirstExercise = "first-exercise"
	BadgeStreak3       = "streak-3"
	BadgeStreak7       = "streak-7"
	BadgePerfectScore  = "perfect-score"
	BadgeCenturyClub   = "century-club"
)

// ModuleMasterBadge derives the per-module mastery badge id.
func ModuleMasterBadge(module string) string {
	return module + "-master"
}

// UserBadge records one awarded badge. The unique index makes awarding
// idempotent: re-inserting an already-held badge is a no-op.
type UserBadge struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID  string    `gorm:"not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	EarnedAt time.Time `gorm:"autoCreateTime" json:"earned_at"`
}
