// Package manager implements the task manager: the single owner of the
// in-memory task collection during a run. All mutations flow through it and
// are persisted via the storage engine before they are acknowledged.
package manager

import (
	"iter"
	"log/slog"
	"time"

	"todo/internal/storage"
	"todo/internal/task"
	"todo/internal/validate"
)

// Storage is the persistence contract the manager depends on. *storage.Store
// satisfies it.
type Storage interface {
	Load() (storage.LoadResult, error)
	Save(doc *storage.Document) error
}

// Filter selects which tasks an iteration yields.
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)

// Matches returns true if the status should be included.
func (f Filter) Matches(status task.Status) bool {
	switch f {
	case FilterPending:
		return status == task.StatusPending
	case FilterCompleted:
		return status == task.StatusCompleted
	default:
		return true
	}
}

// Stats summarizes the collection by status.
type Stats struct {
	Total     int
	Pending   int
	Completed int
}

// InitStatus reports degraded outcomes of Initialize that the caller should
// surface to the user.
type InitStatus struct {
	// RecoveredFromBackup is true when the primary file was corrupt and the
	// collection was restored from the backup.
	RecoveredFromBackup bool
	// DataLost is true when both primary and backup were corrupt and the
	// manager started from an empty collection.
	DataLost bool
}

// Manager owns the in-memory task collection and enforces collection-level
// invariants: bounded size, unique ids, and monotonic id assignment.
type Manager struct {
	store  Storage
	logger *slog.Logger
	now    func() time.Time

	tasks  []*task.Task
	lastID int
}

// New creates a Manager backed by the given storage. A nil logger disables
// diagnostics. Initialize must be called before any other operation.
func New(store Storage, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Initialize loads the persisted document and populates the in-memory
// collection and the last_id counter. On unrecoverable corruption the
// manager starts from an empty collection and reports the data loss through
// both InitStatus and the returned error, leaving the caller to decide how
// loudly to warn; the manager itself remains usable.
func (m *Manager) Initialize() (InitStatus, error) {
	result, err := m.store.Load()
	if err != nil {
		m.tasks = nil
		m.lastID = 0
		m.logger.Error("task data unrecoverable, starting empty", "error", err)
		return InitStatus{DataLost: true}, err
	}

	m.tasks = result.Doc.Tasks
	m.lastID = result.Doc.Metadata.LastID
	m.logger.Debug("loaded tasks", "count", len(m.tasks), "last_id", m.lastID)
	return InitStatus{RecoveredFromBackup: result.RecoveredFromBackup}, nil
}

// Add validates the description, assigns the next id, appends the task, and
// persists. On save failure the in-memory mutation is rolled back so memory
// and disk never diverge.
func (m *Manager) Add(description string) (*task.Task, error) {
	trimmed, err := validate.Description(description)
	if err != nil {
		return nil, err
	}
	if err := validate.Capacity(len(m.tasks)); err != nil {
		return nil, err
	}

	t, err := task.New(m.lastID+1, trimmed, m.now())
	if err != nil {
		return nil, err
	}

	m.tasks = append(m.tasks, t)
	m.lastID++

	if err := m.save(); err != nil {
		m.tasks = m.tasks[:len(m.tasks)-1]
		m.lastID--
		return nil, err
	}
	return t, nil
}

// Complete marks the task at the given 1-based position as completed and
// persists. The number resolves against the unfiltered in-memory ordering,
// not the persisted id, and not any filtered view the caller may have
// displayed. Same rollback discipline as Add on save failure.
func (m *Manager) Complete(number int) (*task.Task, error) {
	if err := validate.TaskNumber(number, len(m.tasks)); err != nil {
		return nil, err
	}

	t := m.tasks[number-1]
	prevStatus := t.Status
	prevUpdated := t.UpdatedAt
	if err := t.MarkComplete(m.now()); err != nil {
		return nil, err
	}

	if err := m.save(); err != nil {
		t.Status = prevStatus
		t.UpdatedAt = prevUpdated
		return nil, err
	}
	return t, nil
}

// Tasks returns a lazy, restartable iteration over the collection in
// insertion order, restricted by the filter.
func (m *Manager) Tasks(filter Filter) iter.Seq[*task.Task] {
	return func(yield func(*task.Task) bool) {
		for _, t := range m.tasks {
			if !filter.Matches(t.Status) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of tasks in the collection.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Stats returns the per-status task counts.
func (m *Manager) Stats() Stats {
	s := Stats{Total: len(m.tasks)}
	for _, t := range m.tasks {
		if t.Status == task.StatusCompleted {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	return s
}

// save persists the full document snapshot of the current collection.
func (m *Manager) save() error {
	doc := storage.NewDocument()
	doc.Metadata.LastID = m.lastID
	doc.Tasks = m.tasks
	return m.store.Save(doc)
}
