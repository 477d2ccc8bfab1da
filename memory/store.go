// Package memory implements plando.TaskStore as an in-process ordered list.
package memory

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"plando"
)

// Store keeps tasks in insertion order. Ids are assigned from a counter that
// only ever increases, so an id is never reused after a removal; removals only
// shift positions, never ids.
type Store struct {
	mu     sync.Mutex
	tasks  []plando.Task
	nextID int
	now    func() time.Time
	l      plando.Logger
}

var _ plando.TaskStore = (*Store)(nil)

func NewTaskStore(logger plando.Logger) *Store {
	return &Store{
		nextID: 1,
		now:    time.Now,
		l:      logger,
	}
}

func (s *Store) Add(req plando.AddTaskRequest) (int, error) {
	if strings.TrimSpace(req.Title) == "" {
		return 0, fmt.Errorf("provide required field 'Title'")
	}

	subject := req.Subject
	if subject == "" {
		subject = plando.DefaultSubject
	}
	priority := req.Priority
	if !priority.Valid() {
		priority = plando.PriorityMedium
	}
	var due time.Time
	if !req.DueDate.IsZero() {
		due = plando.DateOf(req.DueDate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := plando.Task{
		ID:        s.nextID,
		Title:     req.Title,
		Subject:   subject,
		Priority:  priority,
		DueDate:   due,
		Status:    plando.StatusPending,
		CreatedAt: s.now(),
		Notes:     req.Notes,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)

	s.l.Debug("added task", "id", t.ID, "title", t.Title, "subject", t.Subject, "priority", t.Priority)
	return t.ID, nil
}

func (s *Store) All() []plando.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

func (s *Store) ByStatus(status plando.Status) []plando.Task {
	return s.filtered(func(t plando.Task) bool {
		return t.Status == status
	})
}

func (s *Store) BySubject(subject string) []plando.Task {
	return s.filtered(func(t plando.Task) bool {
		return strings.EqualFold(t.Subject, subject)
	})
}

func (s *Store) ByPriority(p plando.Priority) []plando.Task {
	return s.filtered(func(t plando.Task) bool {
		return t.Priority == p
	})
}

func (s *Store) Overdue() []plando.Task {
	now := s.now()
	return s.filtered(func(t plando.Task) bool {
		return t.Overdue(now)
	})
}

func (s *Store) Upcoming(withinDays int) []plando.Task {
	now := s.now()
	return s.filtered(func(t plando.Task) bool {
		return t.DueWithin(now, withinDays)
	})
}

func (s *Store) Search(keyword string) []plando.Task {
	kw := strings.ToLower(keyword)
	return s.filtered(func(t plando.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), kw) ||
			strings.Contains(strings.ToLower(t.Notes), kw)
	})
}

func (s *Store) UpdateStatus(id int, status plando.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.l.Warn("update status for unknown task", "id", id)
		return false
	}
	s.tasks[i].Status = status
	s.l.Debug("updated status", "id", id, "status", status)
	return true
}

func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.l.Warn("remove unknown task", "id", id)
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.l.Debug("removed task", "id", id)
	return true
}

func (s *Store) Counts() plando.StatusCounts {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var c plando.StatusCounts
	c.Total = len(s.tasks)
	for _, t := range s.tasks {
		switch t.Status {
		case plando.StatusPending:
			c.Pending++
		case plando.StatusInProgress:
			c.InProgress++
		case plando.StatusCompleted:
			c.Completed++
		}
		if t.Overdue(now) {
			c.Overdue++
		}
	}
	return c
}

func (s *Store) SortedByPriority(descending bool) []plando.Task {
	tasks := s.All()
	slices.SortStableFunc(tasks, func(a, b plando.Task) int {
		if descending {
			return int(b.Priority) - int(a.Priority)
		}
		return int(a.Priority) - int(b.Priority)
	})
	return tasks
}

func (s *Store) SortedByDueDate(ascending bool) []plando.Task {
	var dated, undated []plando.Task
	for _, t := range s.All() {
		if t.HasDueDate() {
			dated = append(dated, t)
		} else {
			undated = append(undated, t)
		}
	}
	slices.SortStableFunc(dated, func(a, b plando.Task) int {
		if ascending {
			return a.DueDate.Compare(b.DueDate)
		}
		return b.DueDate.Compare(a.DueDate)
	})
	// undated tasks always sort last, whatever the direction
	return append(dated, undated...)
}

// indexOf returns the position of the task with the given id, or -1.
// Callers must hold mu.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t plando.Task) bool {
		return t.ID == id
	})
}

func (s *Store) filtered(keep func(plando.Task) bool) []plando.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]plando.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			matches = append(matches, t)
		}
	}
	return matches
}
