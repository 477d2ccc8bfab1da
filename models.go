package plando

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSubject is assigned to tasks created without a subject.
const DefaultSubject = "General"

// DefaultDateLayout is the layout used for due dates unless configured otherwise.
const DefaultDateLayout = "2006-01-02"

type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// ParsePriority maps a user-supplied token to a Priority. Tokens are
// case-insensitive; unrecognized tokens are rejected rather than defaulted.
func ParsePriority(tok string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "urgent":
		return PriorityUrgent, nil
	}
	return 0, fmt.Errorf("unrecognized priority %q (want low|medium|high|urgent)", tok)
}

type Status int

const (
	StatusPending Status = iota + 1
	StatusInProgress
	StatusCompleted
)

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusCompleted
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseStatus maps a user-supplied token to a Status. "overdue" is not a
// settable status; overdue-ness is derived from the due date at read time.
func ParseStatus(tok string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "pending":
		return StatusPending, nil
	case "in_progress", "in-progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	case "overdue":
		return 0, fmt.Errorf("overdue is derived from the due date and cannot be set")
	}
	return 0, fmt.Errorf("unrecognized status %q (want pending|in_progress|completed)", tok)
}

type Task struct {
	ID        int
	Title     string
	Subject   string
	Priority  Priority
	DueDate   time.Time // zero means no deadline
	Status    Status
	CreatedAt time.Time
	Notes     string
}

func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// Overdue reports whether the task's due date has passed as of now.
// Completed tasks are never overdue.
func (t Task) Overdue(now time.Time) bool {
	if !t.HasDueDate() || t.Status == StatusCompleted {
		return false
	}
	return DateOf(t.DueDate).Before(DateOf(now))
}

// DueWithin reports whether the task is due between today and today+days
// inclusive. Past-due tasks are excluded; they are overdue, not upcoming.
func (t Task) DueWithin(now time.Time, days int) bool {
	if !t.HasDueDate() || t.Status == StatusCompleted {
		return false
	}
	d := DaysUntil(now, t.DueDate)
	return d >= 0 && d <= days
}

// DateOf truncates a timestamp to its calendar date. The result is anchored
// to UTC so that day arithmetic between dates is exact regardless of the
// source location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole calendar days from now until due.
// Negative when due is in the past.
func DaysUntil(now, due time.Time) int {
	return int(DateOf(due).Sub(DateOf(now)).Hours() / 24)
}

// ParseDueDate parses a calendar date using layout, or DefaultDateLayout if
// layout is empty. The returned time carries no time-of-day component.
func ParseDueDate(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (want %s)", s, layout)
	}
	return DateOf(t), nil
}
