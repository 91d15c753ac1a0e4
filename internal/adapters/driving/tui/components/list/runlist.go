// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// RunList displays recorded splits in a navigable list.
type RunList struct {
	runs     []domain.SplitRun
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRunList creates an empty run list.
func NewRunList(s *styles.Styles) *RunList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RunList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the run list.
func (r *RunList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation keys.
func (r *RunList) Update(msg tea.Msg) (*RunList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of runs around the selection.
func (r *RunList) View() string {
	if len(r.runs) == 0 {
		return r.styles.Muted.Render("No splits recorded yet")
	}

	lines := make([]string, 0, len(r.runs)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Recent splits (%d)", len(r.runs))), "")

	visible := r.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.runs))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRun(i, &r.runs[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *RunList) renderRun(index int, run *domain.SplitRun) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := filepath.Base(run.SourcePath)
	maxName := r.width - 36
	if maxName < 10 {
		maxName = 10
	}
	if len(name) > maxName {
		name = name[:maxName-3] + "..."
	}

	when := run.StartedAt.Local().Format("2006-01-02 15:04")
	line := fmt.Sprintf("%s%-*s  %3d parts  %s", indicator, maxName, name, run.Parts, when)

	if index == r.selected {
		return r.styles.Selected.Render(line)
	}
	if !run.Success {
		return r.styles.Error.Render(line)
	}
	return r.styles.Normal.Render(line)
}

// SetRuns replaces the listed runs and resets the selection.
func (r *RunList) SetRuns(runs []domain.SplitRun) {
	r.runs = runs
	r.selected = 0
}

// Runs returns the listed runs.
func (r *RunList) Runs() []domain.SplitRun {
	return r.runs
}

// Selected returns the index of the selected run.
func (r *RunList) Selected() int {
	return r.selected
}

// SelectedRun returns the selected run, or nil if the list is empty.
func (r *RunList) SelectedRun() *domain.SplitRun {
	if r.selected < 0 || r.selected >= len(r.runs) {
		return nil
	}
	return &r.runs[r.selected]
}

// MoveUp moves selection up.
func (r *RunList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RunList) MoveDown() {
	if r.selected < len(r.runs)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RunList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of runs.
func (r *RunList) Count() int {
	return len(r.runs)
}
