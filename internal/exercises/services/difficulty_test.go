package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/architect/francais-pro/internal/catalog"
	usermodels "github.com/architect/francais-pro/internal/users/models"
)

func TestSelectDifficultyByClassLevel(t *testing.T) {
	tests := []struct {
		name       string
		classLevel string
		want       catalog.Difficulty
	}{
		{"6eme defaults easy", usermodels.ClassSixieme, catalog.Facile},
		{"5eme defaults easy", usermodels.ClassCinquieme, catalog.Facile},
		{"4eme is medium", usermodels.ClassQuatrieme, catalog.Moyen},
		{"3eme is medium", usermodels.ClassTroisieme, catalog.Moyen},
		{"2nde is hard", usermodels.ClassSeconde, catalog.Difficile},
		{"1ere is hard", usermodels.ClassPremiere, catalog.Difficile},
		{"terminale is hard", usermodels.ClassTerminale, catalog.Difficile},
		{"unknown class defaults easy", "cp", catalog.Facile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectDifficulty(tt.classLevel, nil))
		})
	}
}

func TestSelectDifficultyProgressOverride(t *testing.T) {
	tests := []struct {
		name       string
		classLevel string
		accuracy   int
		skillLevel int
		want       catalog.Difficulty
	}{
		{"strong 6eme promoted to hard", usermodels.ClassSixieme, 90, 3, catalog.Difficile},
		{"decent 6eme promoted to medium", usermodels.ClassSixieme, 72, 2, catalog.Moyen},
		{"struggling terminale demoted to easy", usermodels.ClassTerminale, 40, 1, catalog.Facile},
		{"high accuracy low level stays easy", usermodels.ClassSixieme, 95, 1, catalog.Facile},
		{"high level low accuracy stays easy", usermodels.ClassSixieme, 50, 4, catalog.Facile},
		{"hard boundary", usermodels.ClassTroisieme, 85, 3, catalog.Difficile},
		{"medium boundary", usermodels.ClassTroisieme, 70, 2, catalog.Moyen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := &usermodels.ModuleProgress{
				Accuracy:   tt.accuracy,
				SkillLevel: tt.skillLevel,
			}
			assert.Equal(t, tt.want, SelectDifficulty(tt.classLevel, progress))
		})
	}
}

func TestSelectDifficultyDeterministic(t *testing.T) {
	progress := &usermodels.ModuleProgress{Accuracy: 88, SkillLevel: 3}
	first := SelectDifficulty(usermodels.ClassQuatrieme, progress)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectDifficulty(usermodels.ClassQuatrieme, progress))
	}
}
