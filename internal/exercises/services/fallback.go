package services

import (
	"math/rand"

	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/exercises/models"
)

// fallbackBank is the static, pre-authored exercise set used when live
// generation is unavailable or fails. Always available, never fails.
var fallbackBank = []models.Exercise{
	// Orthographe
	{
		Question:      "Complète la phrase : « Il ___ très faim ce matin. »",
		Options:       []string{"a", "à", "as", "ah"},
		CorrectAnswer: 0,
		Explanation:   "« a » sans accent est le verbe avoir : on peut le remplacer par « avait ». « à » avec accent est une préposition.",
		Difficulty:    string(catalog.Facile),
		SkillID:       "homophones-a-as",
	},
	{
		Question:      "Complète la phrase : « ___ vas-tu après les cours ? »",
		Options:       []string{"Ou", "Où", "Hou", "Houx"},
		CorrectAnswer: 1,
		Explanation:   "« Où » avec accent indique le lieu. « ou » sans accent exprime un choix : fromage ou dessert.",
		Difficulty:    string(catalog.Facile),
		SkillID:       "homophones-ou-ou",
	},
	{
		Question:      "Complète la phrase : « Ils ___ arrivés en retard. »",
		Options:       []string{"son", "sons", "sont", "s'ont"},
		CorrectAnswer: 2,
		Explanation:   "« sont » est le verbe être : on peut le remplacer par « étaient ». « son » est un déterminant possessif.",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "homophones-son-sont",
	},
	{
		Question:      "Quel est le pluriel de « un cheval » ?",
		Options:       []string{"des chevals", "des chevaux", "des chevaus", "des chevales"},
		CorrectAnswer: 1,
		Explanation:   "Les noms en -al font leur pluriel en -aux : un cheval, des chevaux. Quelques exceptions : bals, carnavals, festivals.",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "pluriel-noms",
	},
	{
		Question:      "Complète : « Les fleurs qu'elle a ___ sentent très bon. »",
		Options:       []string{"cueilli", "cueillie", "cueillis", "cueillies"},
		CorrectAnswer: 3,
		Explanation:   "Avec l'auxiliaire avoir, le participe passé s'accorde avec le COD placé avant : « que » reprend « les fleurs », féminin pluriel.",
		Difficulty:    string(catalog.Difficile),
		SkillID:       "participe-passe-avoir",
	},
	{
		Question:      "Conjugue « faire » au présent : « Vous ___ du bruit. »",
		Options:       []string{"faisez", "faites", "fesez", "faite"},
		CorrectAnswer: 1,
		Explanation:   "« Faire » est un verbe irrégulier : vous faites, comme vous dites et vous êtes.",
		Difficulty:    string(catalog.Difficile),
		SkillID:       "verbes-irreguliers",
	},

	// Grammaire
	{
		Question:      "Dans la phrase « Le chat dort sur le canapé. », quel est le sujet ?",
		Options:       []string{"Le chat", "dort", "sur le canapé", "le canapé"},
		CorrectAnswer: 0,
		Explanation:   "On trouve le sujet en demandant « Qui est-ce qui dort ? » : c'est le chat.",
		Difficulty:    string(catalog.Facile),
		SkillID:       "fonction-sujet",
	},
	{
		Question:      "Quelle est la nature du mot « rapidement » ?",
		Options:       []string{"un adjectif", "un nom", "un adverbe", "un verbe"},
		CorrectAnswer: 2,
		Explanation:   "« Rapidement » modifie un verbe et est invariable : c'est un adverbe, formé sur l'adjectif « rapide ».",
		Difficulty:    string(catalog.Facile),
		SkillID:       "nature-mots",
	},
	{
		Question:      "Dans « Marie mange une pomme. », quel est le COD ?",
		Options:       []string{"Marie", "mange", "une pomme", "il n'y en a pas"},
		CorrectAnswer: 2,
		Explanation:   "On demande « Marie mange quoi ? » : une pomme. C'est le complément d'objet direct.",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "fonction-cod",
	},
	{
		Question:      "À quel temps est conjugué le verbe dans « Nous chanterons demain. » ?",
		Options:       []string{"présent", "imparfait", "passé simple", "futur simple"},
		CorrectAnswer: 3,
		Explanation:   "La terminaison -erons marque le futur simple : nous chanterons.",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "temps-verbaux",
	},
	{
		Question:      "Dans « Je pense que tu as raison. », que représente « que tu as raison » ?",
		Options:       []string{"une proposition principale", "une subordonnée relative", "une subordonnée conjonctive", "un complément circonstanciel"},
		CorrectAnswer: 2,
		Explanation:   "Introduite par la conjonction « que », cette proposition complète le verbe « pense » : c'est une subordonnée conjonctive.",
		Difficulty:    string(catalog.Difficile),
		SkillID:       "propositions",
	},

	// Vocabulaire
	{
		Question:      "Quel mot est un synonyme de « content » ?",
		Options:       []string{"triste", "heureux", "fâché", "fatigué"},
		CorrectAnswer: 1,
		Explanation:   "« Heureux » a un sens proche de « content ». Les autres mots expriment des états différents.",
		Difficulty:    string(catalog.Facile),
		SkillID:       "synonymes",
	},
	{
		Question:      "Quel est le contraire de « grand » ?",
		Options:       []string{"immense", "petit", "large", "haut"},
		CorrectAnswer: 1,
		Explanation:   "« Petit » est l'antonyme de « grand ». « Immense » en est au contraire un synonyme renforcé.",
		Difficulty:    string(catalog.Facile),
		SkillID:       "antonymes",
	},
	{
		Question:      "Que signifie l'expression « donner sa langue au chat » ?",
		Options:       []string{"parler trop", "renoncer à deviner", "dire un secret", "se taire par politesse"},
		CorrectAnswer: 1,
		Explanation:   "« Donner sa langue au chat » signifie abandonner, renoncer à trouver la réponse.",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "expressions-idiomatiques",
	},
	{
		Question:      "À quel registre de langue appartient le mot « bagnole » ?",
		Options:       []string{"soutenu", "courant", "familier", "littéraire"},
		CorrectAnswer: 2,
		Explanation:   "« Bagnole » est familier. En registre courant on dit « voiture », en registre soutenu « automobile ».",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "registres-langue",
	},
	{
		Question:      "Quel mot n'appartient pas au champ lexical de la mer ?",
		Options:       []string{"vague", "marée", "sommet", "écume"},
		CorrectAnswer: 2,
		Explanation:   "« Sommet » appartient au champ lexical de la montagne. Vague, marée et écume évoquent la mer.",
		Difficulty:    string(catalog.Difficile),
		SkillID:       "champ-lexical",
	},

	// Compréhension
	{
		Question:      "« Tom rentra trempé : il avait oublié son parapluie. » Quelle est l'idée principale ?",
		Options:       []string{"Tom aime la pluie", "Tom s'est fait surprendre par la pluie", "Tom a perdu son parapluie", "Tom est rentré tard"},
		CorrectAnswer: 1,
		Explanation:   "Le texte raconte que Tom a été mouillé faute de parapluie : il s'est fait surprendre par la pluie.",
		Difficulty:    string(catalog.Facile),
		SkillID:       "idee-principale",
	},
	{
		Question:      "Une affiche dit : « Éteignez la lumière en sortant ! » Quelle est l'intention de l'auteur ?",
		Options:       []string{"divertir", "informer", "faire agir", "émouvoir"},
		CorrectAnswer: 2,
		Explanation:   "L'impératif cherche à faire agir le lecteur : c'est un message injonctif.",
		Difficulty:    string(catalog.Moyen),
		SkillID:       "intentions-auteur",
	},
	{
		Question:      "« Cette femme est une véritable tornade. » Quelle figure de style est employée ?",
		Options:       []string{"une comparaison", "une métaphore", "une personnification", "une hyperbole"},
		CorrectAnswer: 1,
		Explanation:   "L'image est directe, sans outil de comparaison (« comme ») : c'est une métaphore.",
		Difficulty:    string(catalog.Difficile),
		SkillID:       "figures-style",
	},
	{
		Question:      "« Paul regarda une dernière fois la maison, puis ferma la grille sans se retourner. » Que comprend-on implicitement ?",
		Options:       []string{"Paul part définitivement", "Paul va revenir demain", "Paul a oublié quelque chose", "Paul attend un visiteur"},
		CorrectAnswer: 0,
		Explanation:   "« Une dernière fois » et « sans se retourner » suggèrent un départ définitif, sans que le texte le dise explicitement.",
		Difficulty:    string(catalog.Difficile),
		SkillID:       "sens-implicite",
	},
}

// FallbackByModuleAndDifficulty returns up to count bank exercises
// matching the module and difficulty.
func FallbackByModuleAndDifficulty(module catalog.Category, difficulty catalog.Difficulty, count int) []models.Exercise {
	var out []models.Exercise
	for _, ex := range fallbackBank {
		skill := catalog.ByID(ex.SkillID)
		if skill == nil || skill.Category != module {
			continue
		}
		if ex.Difficulty != string(difficulty) {
			continue
		}
		out = append(out, ex)
		if len(out) == count {
			break
		}
	}
	return out
}

// FallbackRandom returns up to count bank exercises for the module,
// any difficulty, in random order.
func FallbackRandom(module catalog.Category, count int) []models.Exercise {
	var pool []models.Exercise
	for _, ex := range fallbackBank {
		if skill := catalog.ByID(ex.SkillID); skill != nil && skill.Category == module {
			pool = append(pool, ex)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// placeholderExercise is the last resort when even the bank has nothing
// for the requested module and difficulty.
func placeholderExercise(difficulty catalog.Difficulty) models.Exercise {
	return models.Exercise{
		Question:      "Exercice temporairement indisponible. Veuillez réessayer plus tard.",
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectAnswer: 0,
		Explanation:   "Service temporairement indisponible.",
		Difficulty:    string(difficulty),
		SkillID:       models.GeneralSkillID,
	}
}
