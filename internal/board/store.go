package board

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/pablasso/kanban/internal/util"
	"github.com/sirupsen/logrus"
)

// Task is a single card on the board.
type Task struct {
	ID     int
	Text   string
	Status Status
}

// Store owns the ordered list of tasks and the identifier sequence.
// Tasks stay in creation order; status changes never reorder them.
// A Store is not safe for concurrent use.
type Store struct {
	tasks []Task
	ids   util.Sequence
	log   logrus.FieldLogger
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for diagnostic messages.
func WithLogger(log logrus.FieldLogger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates an empty store whose first task will get identifier 0.
func NewStore(opts ...StoreOption) *Store {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Store{log: discard}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new Todo task and returns its identifier.
// Empty or whitespace-only text is ignored and ok is false.
func (s *Store) Create(text string) (id int, ok bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	id = s.ids.Next()
	s.tasks = append(s.tasks, Task{ID: id, Text: text, Status: Todo})
	s.log.WithField("task_id", id).Debug("task created")
	return id, true
}

// Delete removes the task with the given identifier.
// It returns false if no such task exists.
func (s *Store) Delete(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		s.log.WithField("task_id", id).Debug("delete skipped: task not found")
		return false
	}

	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	s.log.WithField("task_id", id).Debug("task deleted")
	return true
}

// SetStatus moves the task with the given identifier to status to.
// Missing tasks and transitions that skip a column are ignored and report false.
func (s *Store) SetStatus(id int, to Status) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		s.log.WithField("task_id", id).Debug("status change skipped: task not found")
		return false
	}

	from := s.tasks[idx].Status
	if !CanTransition(from, to) {
		s.log.WithFields(logrus.Fields{
			"task_id": id,
			"from":    from.String(),
			"to":      to.String(),
		}).Debug("status change rejected: illegal transition")
		return false
	}

	s.tasks[idx].Status = to
	s.log.WithFields(logrus.Fields{
		"task_id": id,
		"from":    from.String(),
		"to":      to.String(),
	}).Debug("task moved")
	return true
}

// Get returns the task with the given identifier.
func (s *Store) Get(id int) (Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.tasks[idx], true
}

// ListByStatus yields the tasks in status in insertion order.
// The sequence reads the store lazily and can be ranged over more than once.
// The store must not be modified while the sequence is being consumed.
func (s *Store) ListByStatus(status Status) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range s.tasks {
			if t.Status != status {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the identifier the next created task will get.
func (s *Store) NextID() int {
	return s.ids.Peek()
}

// Counts returns the number of tasks per status.
func (s *Store) Counts() map[Status]int {
	counts := make(map[Status]int, len(statusNames))
	for _, st := range Statuses() {
		counts[st] = 0
	}
	for _, t := range s.tasks {
		counts[t.Status]++
	}
	return counts
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}
