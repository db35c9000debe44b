package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/architect/francais-pro/internal/catalog"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate runs struct-tag validation outside the gin binding path,
// for DTOs that arrive through the service layer directly.
func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", err.Tag()),
		})
	}
	return errors
}

// FocusSkills checks that every requested focus skill exists in the
// catalog and belongs to the requested module. The binding tags cannot
// express this; it needs the catalog.
func FocusSkills(module string, skillIDs []string) []ValidationError {
	if !catalog.IsCategory(module) {
		return []ValidationError{{
			Field:   "module",
			Message: fmt.Sprintf("unknown module %q", module),
		}}
	}

	var errors []ValidationError
	for _, id := range skillIDs {
		skill := catalog.ByID(id)
		switch {
		case skill == nil:
			errors = append(errors, ValidationError{
				Field:   "focus_skills",
				Message: fmt.Sprintf("unknown skill %q", id),
			})
		case skill.Category != catalog.Category(module):
			errors = append(errors, ValidationError{
				Field:   "focus_skills",
				Message: fmt.Sprintf("skill %q belongs to module %q", id, skill.Category),
			})
		}
	}
	return errors
}

// SkillID checks a submitted skill id: empty and the generic
// placeholder are accepted, anything else must exist in the catalog.
func SkillID(id string, placeholder string) []ValidationError {
	if id == "" || id == placeholder {
		return nil
	}
	if catalog.ByID(id) == nil {
		return []ValidationError{{
			Field:   "skill_id",
			Message: fmt.Sprintf("unknown skill %q", id),
		}}
	}
	return nil
}
