package services

import (
	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/exercises/models"
	"github.com/architect/francais-pro/internal/exercises/repository"
)

const (
	weakSkillLimit   = 3
	recentErrorLimit = 5
)

// TargetSkills resolves which skills the next exercise should focus on.
//
// Priority order:
//  1. an explicit focus list from the caller wins outright;
//  2. structured mastery data (weak skills of the module, weakest and
//     longest-unpracticed first) is the primary signal;
//  3. for learners with no mastery history yet, keyword analysis of
//     recently-missed question texts fills in.
//
// Also returns the weak mastery rows so the prompt can cite current
// percentages.
func TargetSkills(userID uint, module catalog.Category, focus []string) ([]string, []*models.UserSkill, error) {
	moduleSkills := catalog.IDsByCategory(module)

	weak, err := repository.GetWeakSkills(userID, moduleSkills, weakSkillLimit)
	if err != nil {
		return nil, nil, err
	}

	if len(focus) > 0 {
		return focus, weak, nil
	}

	if len(weak) > 0 {
		ids := make([]string, 0, len(weak))
		for _, w := range weak {
			ids = append(ids, w.SkillID)
		}
		return ids, weak, nil
	}

	recentErrors, err := repository.GetRecentErrors(userID, string(module), recentErrorLimit)
	if err != nil {
		return nil, nil, err
	}

	return catalog.AnalyzeWeakSkills(recentErrors), weak, nil
}
