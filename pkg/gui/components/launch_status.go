package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"spree/pkg/gui/theme"
)

// StatusKind is the phase shown in the status line.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLaunching
	StatusSucceeded
	StatusFailed
)

var (
	statusMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SuccessStatus))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorStatus)).Bold(true)
)

// LaunchStatus renders a spinner while a button's command starts, then the
// outcome. Failures stay until the next launch.
type LaunchStatus struct {
	spinner spinner.Model
	kind    StatusKind
	text    string
	width   int
}

// NewLaunchStatus returns an idle status line.
func NewLaunchStatus() *LaunchStatus {
	return &LaunchStatus{
		spinner: spinner.New(spinner.WithSpinner(LaunchDots)),
	}
}

// SetWidth limits the rendered line to width cells.
func (s *LaunchStatus) SetWidth(width int) {
	if s == nil {
		return
	}
	s.width = width
}

// Kind returns the current phase.
func (s *LaunchStatus) Kind() StatusKind {
	if s == nil {
		return StatusIdle
	}
	return s.kind
}

// Text returns the current message without styling.
func (s *LaunchStatus) Text() string {
	if s == nil {
		return ""
	}
	return s.text
}

// Start shows label with the spinner and returns the first tick.
func (s *LaunchStatus) Start(label string) tea.Cmd {
	if s == nil {
		return nil
	}
	s.kind = StatusLaunching
	s.text = label
	return s.spinner.Tick
}

// Succeed replaces the spinner with a success message.
func (s *LaunchStatus) Succeed(text string) {
	if s == nil {
		return
	}
	s.kind = StatusSucceeded
	s.text = text
}

// Fail replaces the spinner with an error message.
func (s *LaunchStatus) Fail(text string) {
	if s == nil {
		return
	}
	s.kind = StatusFailed
	s.text = text
}

// Update advances the spinner while launching. Ticks in other phases are
// dropped so the animation stops.
func (s *LaunchStatus) Update(msg tea.Msg) tea.Cmd {
	if s == nil || s.kind != StatusLaunching {
		return nil
	}

	switch tick := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tick)
		return cmd
	}

	return nil
}

// View renders the status line.
func (s *LaunchStatus) View() string {
	if s == nil {
		return ""
	}

	var line string
	switch s.kind {
	case StatusLaunching:
		line = statusMutedStyle.Render(s.spinner.View() + " " + s.text)
	case StatusSucceeded:
		line = statusSuccessStyle.Render("✓ " + s.text)
	case StatusFailed:
		line = statusErrorStyle.Render("✗ " + s.text)
	default:
		return ""
	}

	if s.width > 0 && lipgloss.Width(line) > s.width {
		line = truncate.StringWithTail(line, uint(s.width), "…")
	}
	return line
}
