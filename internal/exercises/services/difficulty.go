package services

import (
	"github.com/architect/francais-pro/internal/catalog"
	usermodels "github.com/architect/francais-pro/internal/users/models"
)

// SelectDifficulty maps a learner's class level and module progress to an
// exercise difficulty. The class level sets a default; when progress data
// exists for the module it fully overrides that default, so a young
// learner with excellent accuracy is promoted past their grade tier.
// Deterministic: no randomness, same inputs always give the same tier.
func SelectDifficulty(classLevel string, progress *usermodels.ModuleProgress) catalog.Difficulty {
	difficulty := catalog.Facile

	switch classLevel {
	case usermodels.ClassTerminale, usermodels.ClassPremiere, usermodels.ClassSeconde:
		difficulty = catalog.Difficile
	case usermodels.ClassTroisieme, usermodels.ClassQuatrieme:
		difficulty = catalog.Moyen
	}

	if progress != nil {
		switch {
		case progress.Accuracy >= 85 && progress.SkillLevel >= 3:
			difficulty = catalog.Difficile
		case progress.Accuracy >= 70 && progress.SkillLevel >= 2:
			difficulty = catalog.Moyen
		default:
			difficulty = catalog.Facile
		}
	}

	return difficulty
}
