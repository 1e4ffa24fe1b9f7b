//nolint:testpackage // Tests require internal access for thorough testing
package task

import (
	"errors"
	"strings"
	"testing"
	"time"

	todoerrors "todo/internal/errors"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{Status("done"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tk, err := New(1, "Buy groceries", now)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tk.ID != 1 {
		t.Errorf("ID = %d, want 1", tk.ID)
	}
	if tk.Status != StatusPending {
		t.Errorf("Status = %q, want %q", tk.Status, StatusPending)
	}
	if !tk.CreatedAt.Equal(now) || !tk.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v/%v, want %v", tk.CreatedAt, tk.UpdatedAt, now)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name        string
		id          int
		description string
	}{
		{"zero id", 0, "valid"},
		{"negative id", -1, "valid"},
		{"empty description", 1, ""},
		{"oversized description", 1, strings.Repeat("a", 201)},
		{"invalid characters", 1, "echo $HOME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.id, tt.description, now); err == nil {
				t.Errorf("New(%d, %q) should fail", tt.id, tt.description)
			}
		})
	}
}

func TestMarkComplete(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	completed := created.Add(time.Hour)

	tk, err := New(1, "Buy groceries", created)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err = tk.MarkComplete(completed); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}
	if tk.Status != StatusCompleted {
		t.Errorf("Status = %q, want %q", tk.Status, StatusCompleted)
	}
	if !tk.UpdatedAt.Equal(completed) {
		t.Errorf("UpdatedAt = %v, want %v", tk.UpdatedAt, completed)
	}
}

func TestMarkCompleteIsTerminal(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tk, err := New(1, "Buy groceries", created)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err = tk.MarkComplete(created.Add(time.Hour)); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	firstUpdate := tk.UpdatedAt
	err = tk.MarkComplete(created.Add(2 * time.Hour))
	if !errors.Is(err, todoerrors.AlreadyCompletedError{ID: 1}) {
		t.Errorf("second MarkComplete error = %v, want AlreadyCompletedError", err)
	}
	if !tk.UpdatedAt.Equal(firstUpdate) {
		t.Errorf("UpdatedAt changed on rejected transition: %v, want %v", tk.UpdatedAt, firstUpdate)
	}
}

func TestValidateRejectsReversedTimestamps(t *testing.T) {
	now := time.Now().UTC()
	tk := &Task{
		ID:          1,
		Description: "valid",
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now.Add(-time.Hour),
	}
	if err := tk.Validate(); err == nil {
		t.Error("Validate should reject updated_at before created_at")
	}
}
