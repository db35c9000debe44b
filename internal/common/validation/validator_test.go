package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusSkills(t *testing.T) {
	tests := []struct {
		name     string
		module   string
		skills   []string
		problems int
	}{
		{"empty focus is fine", "orthographe", nil, 0},
		{"valid skills", "orthographe", []string{"verbes-er", "pluriel-noms"}, 0},
		{"unknown module", "mathematiques", []string{"verbes-er"}, 1},
		{"unknown skill", "orthographe", []string{"inventé"}, 1},
		{"skill from another module", "orthographe", []string{"synonymes"}, 1},
		{"mixed", "orthographe", []string{"verbes-er", "synonymes", "inventé"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FocusSkills(tt.module, tt.skills), tt.problems)
		})
	}
}

func TestSkillID(t *testing.T) {
	assert.Empty(t, SkillID("", "general"))
	assert.Empty(t, SkillID("general", "general"))
	assert.Empty(t, SkillID("verbes-er", "general"))
	assert.Len(t, SkillID("inventé", "general"), 1)
}

func TestValidateStructTags(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Count int    `validate:"min=1,max=20"`
	}

	assert.Nil(t, Validate(payload{Name: "série", Count: 5}))

	problems := Validate(payload{Count: 50})
	assert.Len(t, problems, 2)
}
