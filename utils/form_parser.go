package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"madeireira-orcamento/models"
)

// ParsePositiveFloat parses a user-typed decimal number for the given field.
// Both "2.5" and "2,5" are accepted. The value must be greater than zero.
func ParsePositiveFloat(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, models.NewValidationError(field, "is required")
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, models.NewValidationError(field, "must be a number")
	}
	if v <= 0 {
		return 0, models.NewValidationError(field, "must be greater than 0")
	}
	return v, nil
}

// ParsePositiveInt parses a user-typed whole number greater than zero
func ParsePositiveInt(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, models.NewValidationError(field, "is required")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, models.NewValidationError(field, "must be a whole number")
	}
	if v <= 0 {
		return 0, models.NewValidationError(field, "must be greater than 0")
	}
	return v, nil
}

// RequireText trims a text field and fails when it is empty
func RequireText(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", models.NewValidationError(field, "is required")
	}
	return s, nil
}

// IsDigits reports whether s is non-empty and made only of ASCII digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsLettersAndSpaces reports whether s contains only letters (accented ones
// included) and spaces, with at least one letter
func IsLettersAndSpaces(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}
	return hasLetter
}

// FormatLength prints a length in meters the way the user typed it: 3 -> "3", 2.5 -> "2.5"
func FormatLength(meters float64) string {
	return strconv.FormatFloat(meters, 'f', -1, 64)
}
