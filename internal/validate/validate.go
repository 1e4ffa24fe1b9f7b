// Package validate implements the input validation rules for task data.
// All functions are stateless and return typed errors from internal/errors,
// never bare booleans, so callers can surface actionable messages.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	todoerrors "todo/internal/errors"
)

const (
	// MaxDescriptionLength is the maximum description length after trimming.
	MaxDescriptionLength = 200
	// MaxTasks is the maximum number of tasks the collection may hold.
	MaxTasks = 1000
)

// descriptionPattern is the allow-list of description characters:
// alphanumeric, whitespace, and the punctuation set . , ! ? -
var descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.,!?-]*$`)

// Description trims surrounding whitespace and validates the result against
// the length and character constraints. It returns the trimmed description.
func Description(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if err := CheckDescription(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

// CheckDescription validates an already-trimmed description.
func CheckDescription(text string) error {
	if text == "" {
		return todoerrors.DescriptionEmptyError{}
	}
	// Length is counted in characters, not bytes, so multi-byte input is
	// reported as an invalid character rather than as over-length.
	if n := utf8.RuneCountInString(text); n > MaxDescriptionLength {
		return todoerrors.DescriptionTooLongError{Length: n, Limit: MaxDescriptionLength}
	}
	if !descriptionPattern.MatchString(text) {
		return todoerrors.InvalidCharactersError{}
	}
	return nil
}

// TaskNumber validates a 1-based positional task number against the current
// collection size.
func TaskNumber(n, size int) error {
	if n < 1 || n > size {
		return todoerrors.OutOfRangeError{Number: n, Size: size}
	}
	return nil
}

// Capacity validates that the collection can accept one more task.
func Capacity(size int) error {
	if size >= MaxTasks {
		return todoerrors.CapacityExceededError{Limit: MaxTasks}
	}
	return nil
}
