package services

import (
	"fmt"
	"strings"

	"github.com/architect/francais-pro/internal/catalog"
	exmodels "github.com/architect/francais-pro/internal/exercises/models"
	usermodels "github.com/architect/francais-pro/internal/users/models"
)

const systemPrompt = "Tu es un professeur de français expérimenté qui crée des exercices " +
	"adaptés au niveau scolaire de chaque élève. Tu réponds uniquement en JSON valide, " +
	"sans texte autour."

var classDescriptions = map[string]string{
	usermodels.ClassSixieme:   "élève de 6ème (11-12 ans, entrée au collège)",
	usermodels.ClassCinquieme: "élève de 5ème (12-13 ans)",
	usermodels.ClassQuatrieme: "élève de 4ème (13-14 ans)",
	usermodels.ClassTroisieme: "élève de 3ème (14-15 ans, préparation du brevet)",
	usermodels.ClassSeconde:   "élève de seconde (15-16 ans, entrée au lycée)",
	usermodels.ClassPremiere:  "élève de première (16-17 ans)",
	usermodels.ClassTerminale: "élève de terminale (17-18 ans, préparation du baccalauréat)",
}

var moduleDescriptions = map[catalog.Category]string{
	catalog.Orthographe:   "orthographe française (accords, homophones, conjugaison)",
	catalog.Grammaire:     "grammaire française (nature et fonction des mots, propositions, temps verbaux)",
	catalog.Vocabulaire:   "vocabulaire français (synonymes, antonymes, expressions, registres de langue)",
	catalog.Comprehension: "compréhension de texte (idée principale, intentions de l'auteur, sens implicite)",
}

// buildExercisePrompt assembles the generation prompt for one exercise.
// Weak skills carry their mastery so the model can target actual gaps.
func buildExercisePrompt(
	classLevel string,
	module catalog.Category,
	difficulty catalog.Difficulty,
	targetSkills []string,
	weakSkills []*exmodels.UserSkill,
) string {
	var b strings.Builder

	class, ok := classDescriptions[classLevel]
	if !ok {
		class = "élève de collège"
	}

	fmt.Fprintf(&b, "Crée un exercice de %s pour un %s.\n", moduleDescriptions[module], class)
	fmt.Fprintf(&b, "Niveau de difficulté : %s.\n", difficulty)

	if len(weakSkills) > 0 {
		b.WriteString("\nPoints faibles de l'élève (à travailler en priorité) :\n")
		for _, ws := range weakSkills {
			if skill := catalog.ByID(ws.SkillID); skill != nil {
				fmt.Fprintf(&b, "- %s (maîtrise : %d%%)\n", skill.Name, ws.Mastery)
			}
		}
	}

	if len(targetSkills) > 0 {
		b.WriteString("\nCompétences à cibler :\n")
		for _, id := range targetSkills {
			if skill := catalog.ByID(id); skill != nil {
				fmt.Fprintf(&b, "- %s (%s)\n", skill.Name, skill.ID)
			}
		}
	}

	b.WriteString("\nCompétences valides pour le champ skillId :\n")
	for _, skill := range catalog.ByCategory(module) {
		fmt.Fprintf(&b, "- %s : %s\n", skill.ID, skill.Name)
	}

	b.WriteString(`
Réponds avec un objet JSON de cette forme exacte :
{
  "question": "la question posée à l'élève",
  "options": ["option 1", "option 2", "option 3", "option 4"],
  "correctAnswer": 0,
  "explanation": "explication pédagogique de la bonne réponse",
  "skillId": "identifiant de la compétence évaluée"
}

Contraintes :
- exactement 4 options, une seule correcte
- correctAnswer est l'index (0 à 3) de la bonne réponse
- skillId doit être un des identifiants listés ci-dessus
- la question et l'explication sont en français, adaptées au niveau de l'élève`)

	return b.String()
}
