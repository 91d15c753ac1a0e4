// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSplit is the pick, count and split flow.
	ViewSplit
	// ViewHistory lists recorded splits.
	ViewHistory
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSplit:
		return "split"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// FileSelected is sent when a source file has been chosen.
type FileSelected struct {
	Path string
}

// SplitProgressed carries one progress update from a running split.
type SplitProgressed struct {
	Progress domain.Progress
}

// SplitCompleted carries the outcome of a split.
type SplitCompleted struct {
	Result *domain.SplitResult
	Err    error
}

// HistoryLoaded carries recorded runs, newest first.
type HistoryLoaded struct {
	Runs []domain.SplitRun
	Err  error
}

// HistoryCleared signals the history was emptied.
type HistoryCleared struct {
	Err error
}
