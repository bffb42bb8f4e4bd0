package shared

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims s and converts it to NFC so that composed and
// decomposed accents compare equal in uniqueness checks.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeOptional normalizes an optional string, mapping blank to nil
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := NormalizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}

// RequireText validates a required text field after normalization
func RequireText(label, value string, maxLen int) error {
	if value == "" {
		return NewValidationError("%s est obligatoire.", label)
	}
	return MaxLength(label, value, maxLen)
}

// MaxLength validates an optional text field length in characters
func MaxLength(label, value string, maxLen int) error {
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return NewValidationError("%s ne peut pas dépasser %d caractères.", label, maxLen)
	}
	return nil
}

// MaxLengthPtr is MaxLength for optional fields
func MaxLengthPtr(label string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	return MaxLength(label, *value, maxLen)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an optional email address
func ValidateEmail(label string, email *string, maxLen int) error {
	if email == nil {
		return nil
	}
	if err := MaxLength(label, *email, maxLen); err != nil {
		return err
	}
	if !emailRegex.MatchString(*email) {
		return NewValidationError("%s n'est pas une adresse email valide.", label)
	}
	return nil
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to i
func IntPtr(i int) *int { return &i }
