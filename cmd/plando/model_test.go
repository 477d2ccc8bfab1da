package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plando"
	"plando/memory"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	l := log.New(io.Discard)
	store := memory.NewTaskStore(l)

	for _, req := range []plando.AddTaskRequest{
		{Title: "algebra problems", Subject: "Math"},
		{Title: "lab report", Subject: "Science"},
		{Title: "flash cards", Subject: "Math"},
	} {
		_, err := store.Add(req)
		require.NoError(t, err)
	}

	m := model{
		l:            l,
		store:        store,
		dateFormat:   plando.DefaultDateLayout,
		upcomingDays: 7,
		userinput:    textinput.New(),
		vp:           viewport.New(0, 0),
	}
	m.setView("all tasks", store.All)
	return m
}

func taskTitles(tasks []plando.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestHandleInput_AddRefreshesView(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleInput("/a essay draft #english !urgent")

	require.Len(t, m.view, 4)
	added := m.view[3]
	assert.Equal(t, "essay draft", added.Title)
	assert.Equal(t, "english", added.Subject)
	assert.Equal(t, plando.PriorityUrgent, added.Priority)
}

func TestHandleInput_PositionMapsToIDInFilteredView(t *testing.T) {
	m := newTestModel(t)

	// narrow the view: positions now diverge from store positions
	m, _ = m.handleInput("/f c math")
	require.Equal(t, []string{"algebra problems", "flash cards"}, taskTitles(m.view))

	// displayed position 2 is "flash cards", store position 3
	m, _ = m.handleInput("/m 2 completed")
	require.Empty(t, m.alerts)

	all := m.store.All()
	require.Len(t, all, 3)
	assert.Equal(t, plando.StatusPending, all[1].Status) // lab report untouched
	assert.Equal(t, plando.StatusCompleted, all[2].Status)
}

func TestHandleInput_DeleteByPosition(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleInput("/f c math")
	m, _ = m.handleInput("/x 1")

	// the filtered view refreshed in place
	assert.Equal(t, []string{"flash cards"}, taskTitles(m.view))
	assert.Equal(t, []string{"lab report", "flash cards"}, taskTitles(m.store.All()))
}

func TestHandleInput_OutOfRangePosition(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleInput("/x 9")
	require.NotEmpty(t, m.alerts)
	assert.Len(t, m.store.All(), 3)
}

func TestHandleInput_BareInputSearches(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleInput("LAB")
	assert.Equal(t, []string{"lab report"}, taskTitles(m.view))
}

func TestHandleInput_RejectsOverdueStatus(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleInput("/m 1 overdue")
	require.NotEmpty(t, m.alerts)
	assert.Equal(t, plando.StatusPending, m.store.All()[0].Status)
}
