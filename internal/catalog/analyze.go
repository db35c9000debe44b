package catalog

import (
	"sort"
	"strings"
)

// AnalyzeWeakSkills scores every catalog skill by counting case-insensitive
// keyword occurrences across the given wrong-answer texts and returns the
// top 3 skill ids by score, ties broken by catalog order.
//
// This is a fuzzy heuristic over free text. It exists for brand-new learners
// with no mastery history; once structured mastery data accumulates, that is
// the primary targeting signal.
func AnalyzeWeakSkills(errorTexts []string) []string {
	frequency := make(map[string]int)

	for _, text := range errorTexts {
		lower := strings.ToLower(text)
		for _, skill := range skills {
			for _, keyword := range skill.Keywords {
				if strings.Contains(lower, strings.ToLower(keyword)) {
					frequency[skill.ID]++
					break
				}
			}
		}
	}

	type scored struct {
		id    string
		score int
		order int
	}

	var ranked []scored
	for i, skill := range skills {
		if n, ok := frequency[skill.ID]; ok {
			ranked = append(ranked, scored{id: skill.ID, score: n, order: i})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.id)
	}
	return out
}
