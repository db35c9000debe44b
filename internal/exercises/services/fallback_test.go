package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/exercises/models"
)

func TestFallbackBankIsWellFormed(t *testing.T) {
	for _, ex := range fallbackBank {
		assert.NotEmpty(t, ex.Question)
		assert.Len(t, ex.Options, 4)
		assert.GreaterOrEqual(t, ex.CorrectAnswer, 0)
		assert.LessOrEqual(t, ex.CorrectAnswer, 3)
		assert.NotEmpty(t, ex.Explanation)
		assert.True(t, catalog.IsDifficulty(ex.Difficulty))
		require.NotNil(t, catalog.ByID(ex.SkillID), "bank skill %q must exist in the catalog", ex.SkillID)
	}
}

func TestFallbackCoversEveryModuleAndDifficulty(t *testing.T) {
	for _, category := range catalog.Categories() {
		for _, difficulty := range []catalog.Difficulty{catalog.Facile, catalog.Moyen, catalog.Difficile} {
			got := FallbackByModuleAndDifficulty(category, difficulty, 1)
			if len(got) == 0 {
				// any-difficulty pool must still serve the module
				assert.NotEmpty(t, FallbackRandom(category, 1),
					"module %s has no bank exercises at all", category)
				continue
			}
			assert.Equal(t, string(difficulty), got[0].Difficulty)
		}
	}
}

func TestFallbackByModuleAndDifficultyFilters(t *testing.T) {
	got := FallbackByModuleAndDifficulty(catalog.Orthographe, catalog.Facile, 10)
	require.NotEmpty(t, got)
	for _, ex := range got {
		skill := catalog.ByID(ex.SkillID)
		require.NotNil(t, skill)
		assert.Equal(t, catalog.Orthographe, skill.Category)
		assert.Equal(t, string(catalog.Facile), ex.Difficulty)
	}
}

func TestFallbackRandomHonorsCount(t *testing.T) {
	got := FallbackRandom(catalog.Vocabulaire, 2)
	assert.Len(t, got, 2)

	// asking for more than the pool holds returns the whole pool
	everything := FallbackRandom(catalog.Vocabulaire, 1000)
	assert.NotEmpty(t, everything)
	assert.LessOrEqual(t, len(everything), 1000)
}

func TestPlaceholderExercise(t *testing.T) {
	ex := placeholderExercise(catalog.Moyen)
	assert.Len(t, ex.Options, 4)
	assert.Equal(t, models.GeneralSkillID, ex.SkillID)
	assert.Equal(t, string(catalog.Moyen), ex.Difficulty)
}
