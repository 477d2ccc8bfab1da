package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plando"
	"plando/memory"
)

func TestParseAddInput(t *testing.T) {
	req, err := parseAddInput("Math homework ch. 4 #math !high @2026-09-01 + problems 1-12", "")
	require.NoError(t, err)
	assert.Equal(t, "Math homework ch. 4", req.Title)
	assert.Equal(t, "math", req.Subject)
	assert.Equal(t, plando.PriorityHigh, req.Priority)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), req.DueDate)
	assert.Equal(t, "problems 1-12", req.Notes)
}

func TestParseAddInput_TitleOnly(t *testing.T) {
	req, err := parseAddInput("walk the dog", "")
	require.NoError(t, err)
	assert.Equal(t, "walk the dog", req.Title)
	assert.Empty(t, req.Subject)
	assert.Zero(t, req.Priority)
	assert.True(t, req.DueDate.IsZero())
	assert.Empty(t, req.Notes)
}

func TestParseAddInput_FirstSubjectWins(t *testing.T) {
	req, err := parseAddInput("review notes #science #biology", "")
	require.NoError(t, err)
	assert.Equal(t, "science", req.Subject)
	assert.Equal(t, "review notes #biology", req.Title)
}

func TestParseAddInput_Rejects(t *testing.T) {
	_, err := parseAddInput("#math !high", "")
	assert.Error(t, err, "no title words left")

	_, err = parseAddInput("essay !asap", "")
	assert.Error(t, err, "bad priority token")

	_, err = parseAddInput("essay @someday", "")
	assert.Error(t, err, "bad date token")
}

func TestParseAddInput_CustomDateLayout(t *testing.T) {
	req, err := parseAddInput("essay @01/02/2026", "01/02/2006")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), req.DueDate)
}

func TestParsePosition(t *testing.T) {
	i, err := parsePosition("1", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = parsePosition("3", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = parsePosition("0", 3)
	assert.Error(t, err)
	_, err = parsePosition("4", 3)
	assert.Error(t, err)
	_, err = parsePosition("x", 3)
	assert.Error(t, err)
}

func TestParseFilterInput(t *testing.T) {
	store := memory.NewTaskStore(log.New(io.Discard))
	_, err := store.Add(plando.AddTaskRequest{Title: "A", Subject: "Math", Priority: plando.PriorityHigh})
	require.NoError(t, err)
	_, err = store.Add(plando.AddTaskRequest{Title: "B"})
	require.NoError(t, err)

	title, query, err := parseFilterInput("c MATH", store)
	require.NoError(t, err)
	assert.Equal(t, "MATH tasks", title)
	require.Len(t, query(), 1)
	assert.Equal(t, "A", query()[0].Title)

	_, query, err = parseFilterInput("s pending", store)
	require.NoError(t, err)
	assert.Len(t, query(), 2)

	_, query, err = parseFilterInput("p high", store)
	require.NoError(t, err)
	assert.Len(t, query(), 1)

	_, _, err = parseFilterInput("p asap", store)
	assert.Error(t, err)
	_, _, err = parseFilterInput("s overdue", store)
	assert.Error(t, err, "overdue is not a settable or filterable stored status")
	_, _, err = parseFilterInput("z x", store)
	assert.Error(t, err)
	_, _, err = parseFilterInput("", store)
	assert.Error(t, err)
}
