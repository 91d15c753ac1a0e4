// Package history provides the TUI view of recorded splits.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
)

// View lists recorded splits and shows the outputs of the selected one.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.HistoryService
	ctx     context.Context

	runs    *list.RunList
	detail  bool
	loading bool
	err     error

	width  int
	height int
}

// NewView creates the history view. service may be nil.
func NewView(s *styles.Styles, service driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		service: service,
		ctx:     context.Background(),
		runs:    list.NewRunList(s),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for history calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads recent runs.
func (v *View) Init() tea.Cmd {
	v.detail = false
	v.err = nil
	if v.service == nil {
		v.runs.SetRuns(nil)
		return nil
	}
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		runs, err := service.List(ctx, 0)
		return messages.HistoryLoaded{Runs: runs, Err: err}
	}
}

func (v *View) clear() tea.Cmd {
	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		return messages.HistoryCleared{Err: service.Clear(ctx)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.runs.SetRuns(msg.Runs)
		}

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		if v.detail {
			v.detail = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		if v.runs.SelectedRun() != nil {
			v.detail = !v.detail
		}
	case keymap.Matches(keyStr, v.keymap.Clear):
		if v.service != nil && !v.detail {
			return v, v.clear()
		}
	case keyStr == "q":
		return v, tea.Quit
	default:
		if !v.detail {
			v.runs, _ = v.runs.Update(msg)
		}
	}
	return v, nil
}

// View renders the run list or the selected run's details.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.detail:
		b.WriteString(v.renderDetail(v.runs.SelectedRun()))
	default:
		b.WriteString(v.runs.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderDetail(run *domain.SplitRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source:   %s\n", v.styles.Path.Render(run.SourcePath))
	fmt.Fprintf(&b, "Parts:    %d\n", run.Parts)
	fmt.Fprintf(&b, "Lines:    %d\n", run.TotalLines)
	fmt.Fprintf(&b, "Started:  %s\n", run.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(&b, "Duration: %s\n", run.Duration().Round(time.Millisecond))
	if run.Success {
		b.WriteString("Status:   " + v.styles.Success.Render("ok") + "\n")
	} else {
		b.WriteString("Status:   " + v.styles.Error.Render("failed: "+run.Error) + "\n")
	}
	if len(run.Outputs) > 0 {
		b.WriteString("\nOutputs:\n")
		for _, p := range run.Outputs {
			b.WriteString("  " + v.styles.Path.Render(p) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *View) renderHelp() string {
	bindings := v.keymap.HistoryHelp()
	hints := make([]string, 0, len(bindings))
	for _, bnd := range bindings {
		h := bnd.Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return v.styles.Help.Render(strings.Join(hints, "  "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.runs.SetDimensions(width, height-4)
}

// Runs returns the listed runs.
func (v *View) Runs() []domain.SplitRun {
	return v.runs.Runs()
}

// ShowingDetail reports whether the selected run's details are shown.
func (v *View) ShowingDetail() bool {
	return v.detail
}

// Err returns the last history error.
func (v *View) Err() error {
	return v.err
}
