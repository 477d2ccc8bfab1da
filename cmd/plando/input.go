package main

import (
	"fmt"
	"strconv"
	"strings"

	"plando"
)

// parseAddInput builds an AddTaskRequest from a /a command body. Inline
// tokens are pulled out of the title: "#subject", "!priority", "@date", and
// everything after a standalone "+" becomes the notes. The first #subject
// wins; later ones are treated as title words.
//
//	/a Math homework ch. 4 #math !high @2026-09-01 + problems 1-12
func parseAddInput(input, dateLayout string) (plando.AddTaskRequest, error) {
	var req plando.AddTaskRequest

	rest := input
	if i := strings.Index(input, " + "); i >= 0 {
		req.Notes = strings.TrimSpace(input[i+3:])
		rest = input[:i]
	}

	var titleWords []string
	for _, w := range strings.Fields(rest) {
		switch {
		case len(w) > 1 && strings.HasPrefix(w, "#") && req.Subject == "":
			req.Subject = w[1:]
		case len(w) > 1 && strings.HasPrefix(w, "!"):
			p, err := plando.ParsePriority(w[1:])
			if err != nil {
				return plando.AddTaskRequest{}, err
			}
			req.Priority = p
		case len(w) > 1 && strings.HasPrefix(w, "@"):
			d, err := plando.ParseDueDate(w[1:], dateLayout)
			if err != nil {
				return plando.AddTaskRequest{}, err
			}
			req.DueDate = d
		default:
			titleWords = append(titleWords, w)
		}
	}

	req.Title = strings.Join(titleWords, " ")
	if req.Title == "" {
		return plando.AddTaskRequest{}, fmt.Errorf("provide a task title")
	}
	return req, nil
}

// parsePosition converts a displayed 1-based position into a 0-based index
// into the current view.
func parsePosition(arg string, size int) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%q is not a position", arg)
	}
	if pos < 1 || pos > size {
		return 0, fmt.Errorf("position %d is out of range (showing %d tasks)", pos, size)
	}
	return pos - 1, nil
}

// parseFilterInput handles the /f command body: "s <status>", "c <subject>",
// or "p <priority>". It returns the view title and a query that can be
// re-run after mutations.
func parseFilterInput(body string, store plando.TaskStore) (string, func() []plando.Task, error) {
	kind, arg, ok := strings.Cut(strings.TrimSpace(body), " ")
	if !ok || arg == "" {
		return "", nil, fmt.Errorf("usage: /f s <status> | /f c <subject> | /f p <priority>")
	}

	switch kind {
	case "s":
		status, err := plando.ParseStatus(arg)
		if err != nil {
			return "", nil, err
		}
		return status.String() + " tasks", func() []plando.Task { return store.ByStatus(status) }, nil
	case "c":
		return arg + " tasks", func() []plando.Task { return store.BySubject(arg) }, nil
	case "p":
		p, err := plando.ParsePriority(arg)
		if err != nil {
			return "", nil, err
		}
		return p.String() + " priority tasks", func() []plando.Task { return store.ByPriority(p) }, nil
	}
	return "", nil, fmt.Errorf("unknown filter %q (want s, c, or p)", kind)
}
