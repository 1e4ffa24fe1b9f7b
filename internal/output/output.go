package output

import (
	"todo/internal/manager"
	"todo/internal/task"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t *task.Task) string
	FormatTaskList(tasks []*task.Task) string
	FormatStats(s manager.Stats) string
	FormatError(err error) string
}
