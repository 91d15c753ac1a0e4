package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/views/split"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView    *menu.View
	splitView   *split.View
	historyView *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error reported through messages.ErrorOccurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		splitView:   split.NewView(s, ports.Split, ""),
		historyView: history.NewView(s, ports.History),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.splitView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// WithStartDir opens the file picker in dir.
func (a *App) WithStartDir(dir string) *App {
	a.splitView.SetStartDir(dir)
	return a
}

// WithFile starts on the part count prompt for path, skipping the menu
// and the file picker.
func (a *App) WithFile(path string) *App {
	a.currentView = messages.ViewSplit
	a.splitView.SetFile(path)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("linesplit")}
	if a.currentView == messages.ViewSplit {
		cmds = append(cmds, a.splitView.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		a.splitView, cmd = a.splitView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSplit:
			a.splitView.Reset()
			return a, a.splitView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.SplitProgressed, messages.SplitCompleted:
		a.splitView, cmd = a.splitView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded, messages.HistoryCleared:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Directory listings, cursor blinks and anything else go to the active view.
	switch a.currentView {
	case messages.ViewSplit:
		a.splitView, cmd = a.splitView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) updateKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSplit:
		a.splitView, cmd = a.splitView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		switch msg.String() {
		case "esc":
			a.currentView = messages.ViewMenu
		case "q":
			cmd = tea.Quit
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSplit:
		return a.splitView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Split a file:
  j/k, ↑/↓    Move through the file picker
  enter       Open a directory or choose a file
  h, ←        Parent directory
  (digits)    Number of parts
  enter       Split
  n           Split another file when done
  esc         Back

History:
  enter       Show or hide the selected split
  c           Clear history
  esc         Back to menu

ctrl+c quits from anywhere.

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SplitView returns the split flow view.
func (a *App) SplitView() *split.View {
	return a.splitView
}

// HistoryView returns the history view.
func (a *App) HistoryView() *history.View {
	return a.historyView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.splitView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
