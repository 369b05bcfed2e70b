package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Required fails on empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MaxLen limits the byte length of value.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

// Matches checks value against a precompiled pattern. Empty values pass;
// combine with Required when the field is mandatory.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool { return value == "" || re.MatchString(value) },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must match %s pattern", description),
			TranslationKey:    "validation.regex_pattern",
			TranslationValues: map[string]any{"field": field, "description": description},
		},
	}
}

// NoControlChars rejects control characters, including tab and newlines.
func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsFunc(value, unicode.IsControl)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must not contain control characters",
			TranslationKey:    "validation.no_control_chars",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// OneOf requires value to be one of allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			TranslationKey:    "validation.one_of",
			TranslationValues: map[string]any{"field": field, "allowed": allowed},
		},
	}
}
