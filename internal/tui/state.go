package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the screen the browser is showing.
type ViewState int

const (
	// ViewStateLoading waits for the country fetch.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the table.
	ViewStateList
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// LoadingState wraps the spinner shown while data is fetched.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner with message beside it.
func NewLoadingState(message string) *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = HeaderStyle
	return &LoadingState{spinner: s, message: message}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and message.
func (l *LoadingState) View() string {
	return l.spinner.View() + " " + l.message
}
