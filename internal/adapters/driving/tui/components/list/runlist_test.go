package list

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

func testRuns() []domain.SplitRun {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.SplitRun{
		{ID: "r3", SourcePath: "/data/c.txt", Parts: 3, StartedAt: now, Success: true},
		{ID: "r2", SourcePath: "/data/b.txt", Parts: 2, StartedAt: now.Add(-time.Hour), Error: "write failed"},
		{ID: "r1", SourcePath: "/data/a.txt", Parts: 10, StartedAt: now.Add(-2 * time.Hour), Success: true},
	}
}

func TestNewRunList(t *testing.T) {
	r := NewRunList(nil)

	require.NotNil(t, r)
	assert.NotNil(t, r.styles)
	assert.Zero(t, r.Count())
	assert.Nil(t, r.SelectedRun())
	assert.Nil(t, r.Init())
}

func TestRunList_EmptyView(t *testing.T) {
	r := NewRunList(nil)

	assert.Contains(t, r.View(), "No splits recorded yet")
}

func TestRunList_View(t *testing.T) {
	r := NewRunList(nil)
	r.SetDimensions(100, 20)
	r.SetRuns(testRuns())

	view := r.View()

	assert.Contains(t, view, "Recent splits (3)")
	assert.Contains(t, view, "c.txt")
	assert.Contains(t, view, "b.txt")
	assert.Contains(t, view, "10 parts")
}

func TestRunList_Navigation(t *testing.T) {
	r := NewRunList(nil)
	r.SetRuns(testRuns())

	r.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, r.Selected())

	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, r.Selected(), "stops at last run")
	assert.Equal(t, "r1", r.SelectedRun().ID)

	r.Update(tea.KeyMsg{Type: tea.KeyUp})
	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, r.Selected(), "stops at first run")
}

func TestRunList_SetRunsResetsSelection(t *testing.T) {
	r := NewRunList(nil)
	r.SetRuns(testRuns())
	r.MoveDown()

	r.SetRuns(testRuns()[:1])

	assert.Equal(t, 0, r.Selected())
	assert.Equal(t, 1, r.Count())
}

func TestRunList_ScrollsToSelection(t *testing.T) {
	r := NewRunList(nil)
	r.SetDimensions(80, 5)
	r.SetRuns(testRuns())

	r.MoveDown()
	r.MoveDown()
	view := r.View()

	assert.Contains(t, view, "a.txt")
	assert.NotContains(t, view, "c.txt")
}
