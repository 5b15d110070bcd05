package store

import (
	"sync"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
)

// Store owns the ordered in-memory task list and the next-identifier
// counter. It is the single source of truth between syncs with the remote
// file. All methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	tasks  []model.Task
	nextID int
	dirty  bool
}

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// Add appends a new task with a fresh identifier. Name and deadline are
// required; amount is forced to zero for non-work tasks.
func (s *Store) Add(owner model.Owner, name string, kind model.TaskKind, amount float64, deadline string) (model.Task, error) {
	if name == "" {
		return model.Task{}, tasklist.ErrNameRequired
	}
	if deadline == "" {
		return model.Task{}, tasklist.ErrDeadlineRequired
	}
	if kind != model.KindWork {
		amount = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Task{
		ID:       s.nextID,
		Name:     name,
		Kind:     kind,
		Amount:   amount,
		Deadline: deadline,
		Owner:    owner,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.dirty = true

	return t, nil
}

// SetDone toggles a task's done state, stamping or clearing the completion
// date. Unknown identifiers are a no-op; found reports whether the task
// exists.
func (s *Store) SetDone(id int, done bool, completedDate string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Done = done
		if done {
			s.tasks[i].CompletedDate = completedDate
		} else {
			s.tasks[i].CompletedDate = ""
		}
		s.dirty = true
		return s.tasks[i], true
	}

	return model.Task{}, false
}

// ReplaceAll discards current contents in favor of tasks, adopting the next
// identifier as one greater than the maximum present (or 1 if empty). The
// remote is authoritative, so a replace also clears the dirty flag.
func (s *Store) ReplaceAll(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]model.Task, len(tasks))
	copy(s.tasks, tasks)

	s.nextID = 1
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.dirty = false
}

// Snapshot returns a copy of the task list in insertion order.
func (s *Store) Snapshot() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Dirty reports whether local mutations exist that have not been pushed or
// overwritten by a reload.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkSaved clears the dirty flag after a successful push to the remote.
func (s *Store) MarkSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}
