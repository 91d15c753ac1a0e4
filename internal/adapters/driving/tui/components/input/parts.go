// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// PartsInput is the prompt for the number of parts.
type PartsInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	err       error
}

// NewPartsInput creates a focused part count prompt.
func NewPartsInput(s *styles.Styles) *PartsInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. 3"
	ti.CharLimit = 9
	ti.Width = 12
	ti.Focus()

	return &PartsInput{
		textinput: ti,
		styles:    s,
	}
}

// Init starts the cursor blinking.
func (p *PartsInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Editing clears a previous parse error.
func (p *PartsInput) Update(msg tea.Msg) (*PartsInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		p.err = nil
	}
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the prompt and any parse error beneath it.
func (p *PartsInput) View() string {
	label := p.styles.Title.Render("Parts: ")
	field := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the library's spelling
	row := lipgloss.JoinHorizontal(lipgloss.Center, label, field)
	if p.err != nil {
		return row + "\n" + p.styles.Error.Render(p.err.Error())
	}
	return row
}

// Parts parses the entered value. A failed parse is remembered and
// shown by View until the next keystroke.
func (p *PartsInput) Parts() (int, error) {
	n, err := domain.ParsePartCount(p.textinput.Value())
	p.err = err
	return n, err
}

// Err returns the last parse error.
func (p *PartsInput) Err() error {
	return p.err
}

// Value returns the raw input.
func (p *PartsInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the raw input.
func (p *PartsInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PartsInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Reset clears the input and any error.
func (p *PartsInput) Reset() {
	p.textinput.Reset()
	p.err = nil
}
