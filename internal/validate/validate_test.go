//nolint:testpackage // Tests require internal access for thorough testing
package validate

import (
	"errors"
	"strings"
	"testing"

	todoerrors "todo/internal/errors"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple", "Buy groceries", "Buy groceries", nil},
		{"trims whitespace", "  Call dentist  ", "Call dentist", nil},
		{"allowed punctuation", "Really? Yes, do it - now!", "Really? Yes, do it - now!", nil},
		{"empty", "", "", todoerrors.DescriptionEmptyError{}},
		{"whitespace only", "   \t  ", "", todoerrors.DescriptionEmptyError{}},
		{"exactly 200 chars", strings.Repeat("a", 200), strings.Repeat("a", 200), nil},
		{"201 chars", strings.Repeat("a", 201), "", todoerrors.DescriptionTooLongError{Length: 201, Limit: 200}},
		{"disallowed chars", "rm -rf /; echo", "", todoerrors.InvalidCharactersError{}},
		{"non-ascii", "café visit", "", todoerrors.InvalidCharactersError{}},
		{"multi-byte within length", strings.Repeat("é", 101), "", todoerrors.InvalidCharactersError{}},
		{"multi-byte over length", strings.Repeat("é", 201), "", todoerrors.DescriptionTooLongError{Length: 201, Limit: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Description(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Description(%q) error = %v, want nil", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("Description(%q) = %q, want %q", tt.input, got, tt.want)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Description(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDescriptionTrimsBeforeLengthCheck(t *testing.T) {
	// 200 content chars padded with whitespace must pass: the limit applies
	// after trimming.
	input := "  " + strings.Repeat("a", 200) + "  "
	got, err := Description(input)
	if err != nil {
		t.Fatalf("Description() error = %v, want nil", err)
	}
	if len(got) != 200 {
		t.Errorf("len(Description()) = %d, want 200", len(got))
	}
}

func TestTaskNumber(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		size  int
		valid bool
	}{
		{"first task", 1, 3, true},
		{"last task", 3, 3, true},
		{"zero", 0, 3, false},
		{"negative", -1, 3, false},
		{"past end", 4, 3, false},
		{"empty collection", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskNumber(tt.n, tt.size)
			if tt.valid && err != nil {
				t.Errorf("TaskNumber(%d, %d) error = %v, want nil", tt.n, tt.size, err)
			}
			if !tt.valid {
				var oor todoerrors.OutOfRangeError
				if !errors.As(err, &oor) {
					t.Errorf("TaskNumber(%d, %d) error = %v, want OutOfRangeError", tt.n, tt.size, err)
				}
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	if err := Capacity(0); err != nil {
		t.Errorf("Capacity(0) error = %v, want nil", err)
	}
	if err := Capacity(MaxTasks - 1); err != nil {
		t.Errorf("Capacity(%d) error = %v, want nil", MaxTasks-1, err)
	}
	err := Capacity(MaxTasks)
	if !errors.Is(err, todoerrors.CapacityExceededError{Limit: MaxTasks}) {
		t.Errorf("Capacity(%d) error = %v, want CapacityExceededError", MaxTasks, err)
	}
}
