package plando

import "time"

// AddTaskRequest carries the caller-supplied fields for a new task.
// Zero values fall back to defaults: Subject to DefaultSubject, Priority to
// PriorityMedium, a zero DueDate means "no deadline".
type AddTaskRequest struct {
	Title    string
	Subject  string
	Priority Priority
	DueDate  time.Time
	Notes    string
}

// StatusCounts summarizes the store. Overdue is computed from the overdue
// predicate and overlaps Pending/InProgress; it is not part of the
// Total = Pending + InProgress + Completed identity.
type StatusCounts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Overdue    int
}

// TaskStore owns the authoritative ordered list of tasks. Insertion order is
// canonical; every query returns defensive copies in that order unless the
// operation says otherwise. Mutations address tasks by their permanent id,
// never by list position.
type TaskStore interface {
	// Add creates a task with the next id, CreatedAt set once, and
	// StatusPending. It rejects an empty title.
	Add(req AddTaskRequest) (int, error)

	All() []Task
	ByStatus(s Status) []Task
	// BySubject matches subjects case-insensitively.
	BySubject(subject string) []Task
	ByPriority(p Priority) []Task

	// Overdue returns dated, not-completed tasks due before today.
	// "Today" is read at call time, never cached.
	Overdue() []Task
	// Upcoming returns dated, not-completed tasks due between today and
	// today+withinDays inclusive.
	Upcoming(withinDays int) []Task
	// Search matches keyword case-insensitively against Title or Notes.
	// An empty keyword matches every task.
	Search(keyword string) []Task

	// UpdateStatus overwrites the status of the task with the given id.
	// Any status may follow any other; there is no transition graph.
	// Returns false if no task has that id.
	UpdateStatus(id int, s Status) bool
	// Remove deletes the task with the given id permanently. Later tasks
	// keep their ids; only their positions shift. Returns false if no task
	// has that id.
	Remove(id int) bool

	Counts() StatusCounts

	// SortedByPriority is a stable sort by priority rank; ties keep
	// insertion order.
	SortedByPriority(descending bool) []Task
	// SortedByDueDate stable-sorts dated tasks by date and appends undated
	// tasks afterward in insertion order. The direction flag only affects
	// the dated subset; "no due date" always sorts last.
	SortedByDueDate(ascending bool) []Task
}
