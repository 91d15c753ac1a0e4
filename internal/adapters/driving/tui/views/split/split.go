// Package split provides the pick, count and split flow of the TUI.
package split

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
)

// Stage is a step of the split flow.
type Stage int

const (
	// StagePick shows the file picker.
	StagePick Stage = iota
	// StageParts prompts for the part count.
	StageParts
	// StageRunning shows the progress bar while parts are written.
	StageRunning
	// StageDone shows the written parts.
	StageDone
	// StageFailed shows the split error.
	StageFailed
)

// updateBuffer bounds how many progress messages queue up between renders.
const updateBuffer = 64

// View is the split flow.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.SplitService
	ctx     context.Context

	picker    filepicker.Model
	startDir  string
	parts     *input.PartsInput
	bar       progress.Model
	statusBar *status.Bar

	stage    Stage
	path     string
	progress domain.Progress
	updates  <-chan tea.Msg
	result   *domain.SplitResult
	err      error

	width  int
	height int
}

// NewView creates the split view. startDir is where the file picker opens;
// empty uses the working directory.
func NewView(s *styles.Styles, service driving.SplitService, startDir string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	v := &View{
		styles:    s,
		keymap:    km,
		service:   service,
		ctx:       context.Background(),
		startDir:  startDir,
		parts:     input.NewPartsInput(s),
		statusBar: status.NewBar(s, km),
		bar: progress.New(
			progress.WithGradient(s.Theme().BarStart, s.Theme().BarEnd),
			progress.WithWidth(40),
		),
		width:  80,
		height: 24,
	}
	v.picker = v.newPicker()
	v.enterPick()
	return v
}

func (v *View) newPicker() filepicker.Model {
	fp := filepicker.New()
	if v.startDir != "" {
		fp.CurrentDirectory = v.startDir
	}
	fp.AutoHeight = true
	return fp
}

// WithContext sets the context splits run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetStartDir changes where the file picker opens.
func (v *View) SetStartDir(dir string) {
	v.startDir = dir
	v.picker = v.newPicker()
}

// Init reads the picker's starting directory.
func (v *View) Init() tea.Cmd {
	return v.picker.Init()
}

// Reset returns to the file picker with nothing selected.
func (v *View) Reset() {
	v.picker = v.newPicker()
	v.path = ""
	v.result = nil
	v.err = nil
	v.progress = domain.Progress{}
	v.updates = nil
	v.parts.Reset()
	v.enterPick()
}

// SetFile skips the picker and prompts for the part count of path.
func (v *View) SetFile(path string) tea.Cmd {
	v.path = path
	v.stage = StageParts
	v.parts.Reset()
	v.statusBar.Clear()
	v.statusBar.SetMessage(path)
	v.statusBar.SetHints(v.keymap.PartsHelp())
	return v.parts.Focus()
}

func (v *View) enterPick() {
	v.stage = StagePick
	v.statusBar.Clear()
	v.statusBar.SetMessage("Choose a text file")
	v.statusBar.SetHints(v.keymap.PickHelp())
}

// Update handles messages for the split view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		var cmd tea.Cmd
		v.picker, cmd = v.picker.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.SplitProgressed:
		v.progress = msg.Progress
		v.statusBar.SetProgress(msg.Progress.Completed, msg.Progress.Total)
		return v, waitFor(v.updates)

	case messages.SplitCompleted:
		v.finish(msg.Result, msg.Err)
		return v, nil
	}

	// Directory listings and cursor blinks.
	var cmd tea.Cmd
	switch v.stage {
	case StagePick:
		v.picker, cmd = v.picker.Update(msg)
	case StageParts:
		v.parts, cmd = v.parts.Update(msg)
	case StageRunning, StageDone, StageFailed:
	}
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch v.stage {
	case StagePick:
		if keymap.Matches(keyStr, v.keymap.Back) {
			return v, changeView(messages.ViewMenu)
		}
		if keyStr == "q" {
			return v, tea.Quit
		}
		var cmd tea.Cmd
		v.picker, cmd = v.picker.Update(msg)
		if ok, path := v.picker.DidSelectFile(msg); ok {
			return v, tea.Batch(cmd, v.SetFile(path))
		}
		return v, cmd

	case StageParts:
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			v.enterPick()
			return v, nil
		case keymap.Matches(keyStr, v.keymap.Split):
			n, err := v.parts.Parts()
			if err != nil {
				return v, nil
			}
			return v, v.start(n)
		}
		var cmd tea.Cmd
		v.parts, cmd = v.parts.Update(msg)
		return v, cmd

	case StageDone, StageFailed:
		switch {
		case keymap.Matches(keyStr, v.keymap.Again):
			v.Reset()
			return v, v.Init()
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, changeView(messages.ViewMenu)
		}

	case StageRunning:
		// Parts are being written; only ctrl+c, handled by the app, interrupts.
	}
	return v, nil
}

// start runs the split on its own goroutine and streams progress back
// through a channel read one message at a time by waitFor.
func (v *View) start(parts int) tea.Cmd {
	updates := make(chan tea.Msg, min(parts, updateBuffer)+1)
	v.updates = updates
	v.stage = StageRunning
	v.progress = domain.Progress{Total: parts}
	v.statusBar.SetState(status.StateSplitting)
	v.statusBar.SetProgress(0, parts)
	v.statusBar.SetHints(nil)

	ctx, service := v.ctx, v.service
	req := domain.SplitRequest{Path: v.path, Parts: parts}

	go func() {
		defer close(updates)
		result, err := service.Split(ctx, req, func(p domain.Progress) {
			updates <- messages.SplitProgressed{Progress: p}
		})
		updates <- messages.SplitCompleted{Result: result, Err: err}
	}()

	return waitFor(updates)
}

func (v *View) finish(result *domain.SplitResult, err error) {
	v.updates = nil
	v.result = result
	v.err = err
	v.statusBar.SetHints(v.keymap.ResultHelp())

	if err != nil {
		v.stage = StageFailed
		v.statusBar.SetState(status.StateError)
		v.statusBar.SetMessage(errorTitle(err))
		return
	}
	v.stage = StageDone
	v.statusBar.SetState(status.StateDone)
	v.statusBar.SetProgress(len(result.Outputs), len(result.Outputs))
}

// waitFor blocks on the next update; nil once the channel is drained.
func waitFor(updates <-chan tea.Msg) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return nil
		}
		return msg
	}
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// errorTitle names the kind of failure for the result popup.
func errorTitle(err error) string {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return "File not found"
	case errors.Is(err, domain.ErrInvalidPartCount):
		return "Invalid part count"
	case errors.Is(err, domain.ErrEncoding):
		return "Encoding error"
	case errors.Is(err, domain.ErrWrite):
		return "Write error"
	default:
		return "Split failed"
	}
}

// View renders the current stage above the status bar.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Split a file"))
	b.WriteString("\n\n")

	switch v.stage {
	case StagePick:
		b.WriteString(v.styles.Muted.Render(v.picker.CurrentDirectory))
		b.WriteString("\n\n")
		b.WriteString(v.picker.View())
	case StageParts:
		b.WriteString("File: " + v.styles.Path.Render(v.path))
		b.WriteString("\n\n")
		b.WriteString(v.parts.View())
	case StageRunning:
		b.WriteString("File: " + v.styles.Path.Render(v.path))
		b.WriteString("\n\n")
		b.WriteString(v.bar.ViewAs(v.progress.Fraction()))
		if v.progress.Completed > 0 {
			b.WriteString("\n\n")
			b.WriteString(v.styles.Muted.Render("wrote " + v.progress.Output.Path))
		}
	case StageDone:
		b.WriteString(v.renderResult())
	case StageFailed:
		b.WriteString(v.styles.ErrorPopup.Render(
			v.styles.Error.Render(errorTitle(v.err)) + "\n\n" + v.err.Error(),
		))
	}

	b.WriteString("\n\n")
	b.WriteString(v.statusBar.View())
	return b.String()
}

func (v *View) renderResult() string {
	var b strings.Builder
	b.WriteString(v.styles.Success.Render("Split complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d lines from %s into %d parts:\n\n",
		v.result.TotalLines, v.styles.Path.Render(v.result.SourcePath), len(v.result.Outputs))
	for _, out := range v.result.Outputs {
		fmt.Fprintf(&b, "  %s  %s\n", v.styles.Path.Render(out.Path),
			v.styles.Muted.Render(fmt.Sprintf("(%d lines)", out.Lines())))
	}
	return v.styles.Popup.Render(strings.TrimRight(b.String(), "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusBar.SetWidth(width)
}

// Stage returns the current stage.
func (v *View) Stage() Stage {
	return v.stage
}

// Path returns the selected file.
func (v *View) Path() string {
	return v.path
}

// Result returns the last successful split.
func (v *View) Result() *domain.SplitResult {
	return v.result
}

// Err returns the last split error.
func (v *View) Err() error {
	return v.err
}

// Progress returns the latest progress update.
func (v *View) Progress() domain.Progress {
	return v.progress
}
