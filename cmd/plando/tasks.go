package main

import (
	"fmt"
	"strings"
	"time"

	"plando"
)

// renderTasks formats a view for the viewport. Positions are 1-based; /m and
// /x address rows by these numbers.
func renderTasks(title string, tasks []plando.Task, dateFormat string, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(colorize(colorCyan, title))
	sb.WriteString("\n\n")

	if len(tasks) == 0 {
		sb.WriteString(faintStyle.Render("no tasks"))
		sb.WriteRune('\n')
		return sb.String()
	}

	for i, t := range tasks {
		sb.WriteString(renderTask(i+1, t, dateFormat, now))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func renderTask(pos int, t plando.Task, dateFormat string, now time.Time) string {
	status := t.Status.String()
	if t.Overdue(now) {
		// derived at render time, never a stored state
		status = colorize(colorRed, "overdue")
	}

	line := fmt.Sprintf("%3d. %s %s #%s !%s",
		pos, pad("["+status+"]", 13), t.Title, t.Subject, t.Priority)
	if t.HasDueDate() {
		line += " @" + t.DueDate.Format(dateFormat)
	}
	if t.Notes != "" {
		line += "\n" + faintStyle.Render("     "+t.Notes)
	}

	if t.Status == plando.StatusCompleted {
		return faintStyle.Render(line)
	}
	return line
}

func renderCounts(c plando.StatusCounts) string {
	return fmt.Sprintf(
		"%d tasks: %d pending, %d in progress, %d completed (%d overdue)",
		c.Total, c.Pending, c.InProgress, c.Completed, c.Overdue,
	)
}
