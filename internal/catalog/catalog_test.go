package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	skill := ByID("participe-passe-avoir")
	if assert.NotNil(t, skill) {
		assert.Equal(t, Orthographe, skill.Category)
		assert.NotEmpty(t, skill.Keywords)
	}

	assert.Nil(t, ByID("unknown-skill"))
	assert.Nil(t, ByID(""))
}

func TestByCategoryCoversAllSkills(t *testing.T) {
	total := 0
	for _, category := range Categories() {
		skills := ByCategory(category)
		assert.NotEmpty(t, skills, "category %s has no skills", category)
		for _, s := range skills {
			assert.Equal(t, category, s.Category)
		}
		total += len(skills)
	}
	assert.Equal(t, len(All()), total)
}

func TestIsCategory(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"orthographe", "orthographe", true},
		{"grammaire", "grammaire", true},
		{"vocabulaire", "vocabulaire", true},
		{"comprehension", "comprehension", true},
		{"unknown", "mathematiques", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCategory(tt.value))
		})
	}
}

func TestIsDifficulty(t *testing.T) {
	assert.True(t, IsDifficulty("facile"))
	assert.True(t, IsDifficulty("moyen"))
	assert.True(t, IsDifficulty("difficile"))
	assert.False(t, IsDifficulty("expert"))
	assert.False(t, IsDifficulty(""))
}

func TestAnalyzeWeakSkills(t *testing.T) {
	tests := []struct {
		name   string
		errors []string
		want   []string
	}{
		{
			name:   "no errors",
			errors: nil,
			want:   nil,
		},
		{
			name:   "unmatched text",
			errors: []string{"Combien font deux plus deux ?"},
			want:   nil,
		},
		{
			name: "scores keyword hits per text, top three, ties by catalog order",
			errors: []string{
				"Accordez le participe passé avec avoir : les pommes qu'il a mangé",
				"Le participe passé dans cette phrase est-il correct ?",
				"Choisissez entre a et à",
			},
			// "a" matches all three texts; both participle skills match two.
			want: []string{"homophones-a-as", "participe-passe-avoir", "participe-passe-etre"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeWeakSkills(tt.errors)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
