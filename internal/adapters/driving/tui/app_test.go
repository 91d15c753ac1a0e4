package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/views/split"
	"github.com/custodia-labs/linesplit/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{
		Split:   &mockSplitService{},
		History: &mockHistoryService{runs: []domain.SplitRun{{ID: "r1", SourcePath: "/a.txt", Parts: 2, Success: true}}},
	})
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

// pump runs cmd and feeds its messages back until the chain ends.
func pump(app *App, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = app.Update(msg)
	}
}

func TestNewApp(t *testing.T) {
	t.Run("split service required", func(t *testing.T) {
		app, err := NewApp(&Ports{History: &mockHistoryService{}})

		assert.ErrorIs(t, err, ErrMissingSplitService)
		assert.Nil(t, app)
	})

	t.Run("nil ports", func(t *testing.T) {
		_, err := NewApp(nil)

		assert.ErrorIs(t, err, ErrMissingSplitService)
	})

	t.Run("history is optional", func(t *testing.T) {
		app, err := NewApp(&Ports{Split: &mockSplitService{}})

		require.NoError(t, err)
		assert.Equal(t, messages.ViewMenu, app.CurrentView())
	})
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)

	assert.Same(t, app, app.WithContext(context.Background()))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Split: &mockSplitService{}})
	require.NoError(t, err)
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Same(t, app, model)
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Split a file")
}

func TestApp_MenuToSplit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = app.Update(cmd())

	assert.Equal(t, messages.ViewSplit, app.CurrentView())
	assert.Equal(t, split.StagePick, app.SplitView().Stage())
	assert.NotNil(t, cmd, "picker reads its directory")
}

func TestApp_WithFile_SplitsToCompletion(t *testing.T) {
	app := newTestApp(t).WithFile("/data/f.txt")
	require.Equal(t, messages.ViewSplit, app.CurrentView())
	require.Equal(t, split.StageParts, app.SplitView().Stage())

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(app, cmd)

	assert.Equal(t, split.StageDone, app.SplitView().Stage())
	assert.Len(t, app.SplitView().Result().Outputs, 4)
	assert.Contains(t, app.View(), "Split complete")
}

func TestApp_SplitFailureShowsError(t *testing.T) {
	app, err := NewApp(&Ports{Split: &mockSplitService{err: domain.ErrFileNotFound}})
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	app.WithFile("/nope.txt")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(app, cmd)

	assert.Equal(t, split.StageFailed, app.SplitView().Stage())
	assert.Contains(t, app.View(), "File not found")
}

func TestApp_History(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewHistory})
	pump(app, cmd)

	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	assert.Len(t, app.HistoryView().Runs(), 1)
	assert.Contains(t, app.View(), "a.txt")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pump(app, cmd)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Help(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Contains(t, app.View(), "Clear history")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"quit message", messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			_, cmd := app.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	boom := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: boom})

	assert.ErrorIs(t, app.Err(), boom)
}
