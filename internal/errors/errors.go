//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// DescriptionEmptyError indicates a description is empty after trimming.
type DescriptionEmptyError struct{}

func (e DescriptionEmptyError) Error() string {
	return "task description cannot be empty"
}

// DescriptionTooLongError indicates a description exceeds the length limit.
type DescriptionTooLongError struct {
	Length int
	Limit  int
}

func (e DescriptionTooLongError) Error() string {
	return fmt.Sprintf("task description is %d characters, maximum is %d", e.Length, e.Limit)
}

// InvalidCharactersError indicates a description contains characters outside
// the allow-list (alphanumeric, whitespace, and . , ! ? -).
type InvalidCharactersError struct{}

func (e InvalidCharactersError) Error() string {
	return "task description contains invalid characters"
}

// OutOfRangeError indicates a task number doesn't reference any listed task.
type OutOfRangeError struct {
	Number int
	Size   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("invalid task number %d (valid: 1-%d)", e.Number, e.Size)
}

// AlreadyCompletedError indicates the task is already in the terminal state.
type AlreadyCompletedError struct {
	ID int
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("task %d is already completed", e.ID)
}

// CapacityExceededError indicates the task list is full.
type CapacityExceededError struct {
	Limit int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("task list is full (maximum %d tasks)", e.Limit)
}

// InvalidIDError indicates a non-positive task ID.
type InvalidIDError struct {
	ID int
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid task id: %d", e.ID)
}

// InvalidStatusError indicates a status outside the closed pending/completed set.
type InvalidStatusError struct {
	Status string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid task status: %q (valid: pending, completed)", e.Status)
}

// InvalidTimestampsError indicates updated_at precedes created_at.
type InvalidTimestampsError struct{}

func (e InvalidTimestampsError) Error() string {
	return "task updated_at cannot be before created_at"
}
