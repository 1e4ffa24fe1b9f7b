package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/manager"
	"todo/internal/task"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	colorGreen = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	colorRed   = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	colorGray  = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

var (
	pendingStyle   = lipgloss.NewStyle()
	completedStyle = lipgloss.NewStyle().Foreground(colorGray).Strikethrough(true)
	checkStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	numberStyle    = lipgloss.NewStyle().Foreground(colorGray)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed)
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t *task.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%d] %s\n", t.ID, f.styleDescription(t)))
	sb.WriteString(fmt.Sprintf("  Status:  %s\n", t.Status))
	sb.WriteString(fmt.Sprintf("  Created: %s\n", t.CreatedAt.Format("2006-01-02 15:04")))
	if !t.UpdatedAt.Equal(t.CreatedAt) {
		sb.WriteString(fmt.Sprintf("  Updated: %s\n", t.UpdatedAt.Format("2006-01-02 15:04")))
	}

	return sb.String()
}

// FormatTaskList formats a list of tasks as compact one-liners, numbered by
// display position.
func (f *HumanFormatter) FormatTaskList(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for i, t := range tasks {
		number := numberStyle.Render(fmt.Sprintf("%4d.", i+1))
		sb.WriteString(fmt.Sprintf("%s %s %s\n", number, f.statusIcon(t.Status), f.styleDescription(t)))
	}
	return sb.String()
}

func (f *HumanFormatter) statusIcon(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return checkStyle.Render("[x]")
	case task.StatusPending:
		return "[ ]"
	default:
		return "[?]"
	}
}

func (f *HumanFormatter) styleDescription(t *task.Task) string {
	if t.Status == task.StatusCompleted {
		return completedStyle.Render(t.Description)
	}
	return pendingStyle.Render(t.Description)
}

// FormatStats formats collection statistics.
func (f *HumanFormatter) FormatStats(s manager.Stats) string {
	return fmt.Sprintf("Total: %d, Pending: %d, Completed: %d\n", s.Total, s.Pending, s.Completed)
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return errorStyle.Render("Error: "+err.Error()) + "\n"
}
