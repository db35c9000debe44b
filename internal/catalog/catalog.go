// Package catalog holds the static grid of French skills the engine
// adapts against. The table is defined at build time and never mutated.
package catalog

// Category is one of the four top-level subject modules.
type Category string

const (
	Orthographe   Category = "orthographe"
	Grammaire     Category = "grammaire"
	Vocabulaire   Category = "vocabulaire"
	Comprehension Category = "comprehension"
)

// Difficulty is the intrinsic difficulty tier of a skill or exercise.
type Difficulty string

const (
	Facile    Difficulty = "facile"
	Moyen     Difficulty = "moyen"
	Difficile Difficulty = "difficile"
)

// Skill is an atomic learning objective within a module.
type Skill struct {
	ID            string
	Name          string
	Category      Category
	Difficulty    Difficulty
	Prerequisites []string
	Keywords      []string
	Description   string
}

// Categories lists the four modules in their canonical order.
func Categories() []Category {
	return []Category{Orthographe, Grammaire, Vocabulaire, Comprehension}
}

// IsCategory reports whether s names a known module.
func IsCategory(s string) bool {
	switch Category(s) {
	case Orthographe, Grammaire, Vocabulaire, Comprehension:
		return true
	}
	return false
}

// IsDifficulty reports whether s names a known difficulty tier.
func IsDifficulty(s string) bool {
	switch Difficulty(s) {
	case Facile, Moyen, Difficile:
		return true
	}
	return false
}

var skills = []Skill{
	{
		ID:          "participe-passe-avoir",
		Name:        "Participe passé avec avoir",
		Category:    Orthographe,
		Difficulty:  Moyen,
		Keywords:    []string{"participe passé", "avoir", "accord", "COD"},
		Description: "Accord du participe passé avec l'auxiliaire avoir",
	},
	{
		ID:          "participe-passe-etre",
		Name:        "Participe passé avec être",
		Category:    Orthographe,
		Difficulty:  Facile,
		Keywords:    []string{"participe passé", "être", "accord", "sujet"},
		Description: "Accord du participe passé avec l'auxiliaire être",
	},
	{
		ID:          "verbes-er",
		Name:        "Verbes du 1er groupe (-er)",
		Category:    Orthographe,
		Difficulty:  Facile,
		Keywords:    []string{"verbes", "premier groupe", "-er", "conjugaison"},
		Description: "Conjugaison des verbes en -er",
	},
	{
		ID:          "verbes-ir",
		Name:        "Verbes du 2ème groupe (-ir)",
		Category:    Orthographe,
		Difficulty:  Moyen,
		Keywords:    []string{"verbes", "deuxième groupe", "-ir", "conjugaison", "-issons"},
		Description: "Conjugaison des verbes en -ir (finir, choisir...)",
	},
	{
		ID:            "verbes-irreguliers",
		Name:          "Verbes irréguliers",
		Category:      Orthographe,
		Difficulty:    Difficile,
		Prerequisites: []string{"verbes-er", "verbes-ir"},
		Keywords:      []string{"verbes", "irréguliers", "troisième groupe"},
		Description:   "Conjugaison des verbes irréguliers",
	},
	{
		ID:          "homophones-a-as",
		Name:        "Homophones à/a",
		Category:    Orthographe,
		Difficulty:  Facile,
		Keywords:    []string{"homophones", "à", "a", "préposition", "verbe avoir"},
		Description: "Distinction entre la préposition \"à\" et le verbe \"a\"",
	},
	{
		ID:          "homophones-ou-ou",
		Name:        "Homophones ou/où",
		Category:    Orthographe,
		Difficulty:  Facile,
		Keywords:    []string{"homophones", "ou", "où", "conjonction", "adverbe"},
		Description: "Distinction entre \"ou\" et \"où\"",
	},
	{
		ID:          "homophones-son-sont",
		Name:        "Homophones son/sont",
		Category:    Orthographe,
		Difficulty:  Moyen,
		Keywords:    []string{"homophones", "son", "sont", "déterminant", "verbe être"},
		Description: "Distinction entre \"son\" et \"sont\"",
	},
	{
		ID:          "pluriel-noms",
		Name:        "Pluriel des noms",
		Category:    Orthographe,
		Difficulty:  Moyen,
		Keywords:    []string{"pluriel", "noms", "-s", "-x", "exceptions"},
		Description: "Formation du pluriel des noms",
	},
	{
		ID:          "accord-adjectifs",
		Name:        "Accord des adjectifs",
		Category:    Orthographe,
		Difficulty:  Moyen,
		Keywords:    []string{"accord", "adjectifs", "genre", "nombre"},
		Description: "Accord des adjectifs en genre et en nombre",
	},

	{
		ID:          "nature-mots",
		Name:        "Nature des mots",
		Category:    Grammaire,
		Difficulty:  Facile,
		Keywords:    []string{"nature", "classe grammaticale", "nom", "verbe", "adjectif"},
		Description: "Identification de la nature des mots",
	},
	{
		ID:          "fonction-sujet",
		Name:        "Fonction sujet",
		Category:    Grammaire,
		Difficulty:  Facile,
		Keywords:    []string{"fonction", "sujet", "qui est-ce qui", "qu'est-ce qui"},
		Description: "Identification du sujet dans une phrase",
	},
	{
		ID:            "fonction-cod",
		Name:          "Complément d'objet direct",
		Category:      Grammaire,
		Difficulty:    Moyen,
		Prerequisites: []string{"fonction-sujet"},
		Keywords:      []string{"COD", "complément", "objet direct", "qui", "quoi"},
		Description:   "Identification du COD",
	},
	{
		ID:            "fonction-coi",
		Name:          "Complément d'objet indirect",
		Category:      Grammaire,
		Difficulty:    Moyen,
		Prerequisites: []string{"fonction-cod"},
		Keywords:      []string{"COI", "complément", "objet indirect", "à qui", "de quoi"},
		Description:   "Identification du COI",
	},
	{
		ID:            "propositions",
		Name:          "Propositions subordonnées",
		Category:      Grammaire,
		Difficulty:    Difficile,
		Prerequisites: []string{"fonction-sujet", "fonction-cod"},
		Keywords:      []string{"proposition", "subordonnée", "relative", "conjonctive"},
		Description:   "Analyse des propositions subordonnées",
	},
	{
		ID:          "temps-verbaux",
		Name:        "Temps et modes verbaux",
		Category:    Grammaire,
		Difficulty:  Moyen,
		Keywords:    []string{"temps", "modes", "indicatif", "subjonctif", "conditionnel"},
		Description: "Reconnaissance des temps et modes",
	},

	{
		ID:          "synonymes",
		Name:        "Synonymes",
		Category:    Vocabulaire,
		Difficulty:  Facile,
		Keywords:    []string{"synonymes", "sens proche", "vocabulaire"},
		Description: "Identification et utilisation des synonymes",
	},
	{
		ID:          "antonymes",
		Name:        "Antonymes",
		Category:    Vocabulaire,
		Difficulty:  Facile,
		Keywords:    []string{"antonymes", "contraires", "sens opposé"},
		Description: "Identification et utilisation des antonymes",
	},
	{
		ID:          "expressions-idiomatiques",
		Name:        "Expressions idiomatiques",
		Category:    Vocabulaire,
		Difficulty:  Moyen,
		Keywords:    []string{"expressions", "idiomatiques", "sens figuré"},
		Description: "Compréhension des expressions françaises",
	},
	{
		ID:          "registres-langue",
		Name:        "Registres de langue",
		Category:    Vocabulaire,
		Difficulty:  Moyen,
		Keywords:    []string{"registre", "familier", "courant", "soutenu"},
		Description: "Distinction des registres de langue",
	},
	{
		ID:          "champ-lexical",
		Name:        "Champ lexical",
		Category:    Vocabulaire,
		Difficulty:  Moyen,
		Keywords:    []string{"champ lexical", "thème", "vocabulaire spécialisé"},
		Description: "Identification des champs lexicaux",
	},

	{
		ID:          "idee-principale",
		Name:        "Idée principale",
		Category:    Comprehension,
		Difficulty:  Facile,
		Keywords:    []string{"idée principale", "thème", "sujet"},
		Description: "Identification de l'idée principale d'un texte",
	},
	{
		ID:          "intentions-auteur",
		Name:        "Intentions de l'auteur",
		Category:    Comprehension,
		Difficulty:  Moyen,
		Keywords:    []string{"intention", "but", "persuader", "informer", "divertir"},
		Description: "Analyse des intentions de l'auteur",
	},
	{
		ID:            "sens-implicite",
		Name:          "Sens implicite",
		Category:      Comprehension,
		Difficulty:    Difficile,
		Prerequisites: []string{"idee-principale"},
		Keywords:      []string{"implicite", "sous-entendu", "inférence"},
		Description:   "Compréhension du sens implicite",
	},
	{
		ID:          "figures-style",
		Name:        "Figures de style",
		Category:    Comprehension,
		Difficulty:  Difficile,
		Keywords:    []string{"métaphore", "comparaison", "personnification", "figures"},
		Description: "Identification des figures de style",
	},
}

// All returns the full skill table in catalog order.
func All() []Skill {
	return skills
}

// ByID returns the skill with the given id, or nil if unknown.
func ByID(id string) *Skill {
	for i := range skills {
		if skills[i].ID == id {
			return &skills[i]
		}
	}
	return nil
}

// ByCategory returns the skills belonging to a module, in catalog order.
func ByCategory(cat Category) []Skill {
	var out []Skill
	for _, s := range skills {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// IDsByCategory returns the skill ids for a module, in catalog order.
func IDsByCategory(cat Category) []string {
	var out []string
	for _, s := range skills {
		if s.Category == cat {
			out = append(out, s.ID)
		}
	}
	return out
}
