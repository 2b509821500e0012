package form

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a text field.
type FieldValidation struct {
	Required  bool
	MaxLength int
	Pattern   *regexp.Regexp
	Hint      string // shown instead of the raw pattern
}

// ValidateText checks a text value against the validation rules.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		if v.Hint != "" {
			return v.Hint
		}
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	return ""
}
