package task

import (
	"time"

	todoerrors "todo/internal/errors"
	"todo/internal/validate"
)

// Status represents the current state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValidStatus checks if a status string is valid.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Task represents a single to-do item.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New constructs a validated Task in the pending state. Primary validation
// happens in the validate package before construction; this re-checks the
// field invariants so a Task can never exist in an invalid state.
func New(id int, description string, now time.Time) (*Task, error) {
	t := &Task{
		ID:          id,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the field invariants of a task.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return todoerrors.InvalidIDError{ID: t.ID}
	}
	if err := validate.CheckDescription(t.Description); err != nil {
		return err
	}
	if !IsValidStatus(t.Status) {
		return todoerrors.InvalidStatusError{Status: string(t.Status)}
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return todoerrors.InvalidTimestampsError{}
	}
	return nil
}

// MarkComplete transitions the task from pending to completed and refreshes
// UpdatedAt. Completed is terminal: completing an already-completed task
// returns AlreadyCompletedError and leaves the task untouched.
func (t *Task) MarkComplete(now time.Time) error {
	if t.Status == StatusCompleted {
		return todoerrors.AlreadyCompletedError{ID: t.ID}
	}
	t.Status = StatusCompleted
	t.UpdatedAt = now
	return nil
}
