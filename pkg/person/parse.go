package person

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAttribute is the sentinel wrapped by every ParseError.
var ErrInvalidAttribute = errors.New("invalid attribute value")

// ParseError indicates a text value that does not name a known enum member.
type ParseError struct {
	Attribute string
	Value     string
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Attribute, e.Value)
}

// Unwrap returns ErrInvalidAttribute.
func (e *ParseError) Unwrap() error {
	return ErrInvalidAttribute
}

// ParseGender parses "female" or "male" (case-insensitive, surrounding
// whitespace ignored). The single-letter forms "f" and "m" are accepted too.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f":
		return Female, nil
	case "male", "m":
		return Male, nil
	default:
		return Female, &ParseError{Attribute: "gender", Value: s}
	}
}

// ParseMaritalStatus parses "married" or "single" (case-insensitive,
// surrounding whitespace ignored).
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "married":
		return Married, nil
	case "single":
		return Single, nil
	default:
		return Married, &ParseError{Attribute: "marital_status", Value: s}
	}
}
