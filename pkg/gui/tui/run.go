package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"spree/internal/debug"
	"spree/pkg/launcher"
)

// Frontend runs the launcher full screen in the current terminal.
type Frontend struct {
	options []tea.ProgramOption
}

var _ launcher.Frontend = (*Frontend)(nil)

// New returns a terminal front end. Extra options are passed to bubbletea
// after the defaults (alt screen, mouse motion).
func New(options ...tea.ProgramOption) *Frontend {
	return &Frontend{options: options}
}

// Run blocks until the user leaves the menu, then calls l.Exit.
func (f *Frontend) Run(l *launcher.Launcher) error {
	output := termenv.NewOutput(os.Stdout)
	lipgloss.SetColorProfile(output.EnvColorProfile())
	debug.Log("Colour profile %v", output.Profile)

	zone.NewGlobal()
	defer zone.Close()

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, f.options...)
	p := tea.NewProgram(newModel(l), options...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %v", err)
	}

	if m, ok := final.(model); ok && m.exiting {
		l.Exit()
	}
	return nil
}
