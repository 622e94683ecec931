// Package tui is the terminal front end: a bubbletea program that draws the
// button row, forwards keys to the launcher's navigation and dispatches the
// chosen button.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"spree/internal/debug"
	"spree/pkg/common"
	"spree/pkg/gui/components"
	"spree/pkg/gui/layout"
	"spree/pkg/gui/theme"
	"spree/pkg/launcher"
	"spree/pkg/nav"
)

// hitFunc reports whether a mouse event falls inside the zone with id.
type hitFunc func(id string, msg tea.MouseMsg) bool

func zoneHit(id string, msg tea.MouseMsg) bool {
	info := zone.Get(id)
	return info != nil && info.InBounds(msg)
}

type model struct {
	launcher *launcher.Launcher
	buttons  []launcher.ButtonData
	layout   *layout.Layout
	keyMap   *common.KeyMap
	footer   *common.Footer
	status   *components.LaunchStatus
	hit      hitFunc

	ready   bool
	focused int  // nav.NoFocus or a button index
	exiting bool // user chose to leave; Run calls Launcher.Exit
}

type launchResultMsg struct {
	index  int
	result launcher.Result
	err    error
}

func newModel(l *launcher.Launcher) model {
	buttons := l.Buttons()
	keyMap := common.NewKeyMap(l.Modes())

	hotkeys := make([]nav.Hotkey, len(buttons))
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		hotkeys[i] = b.Hotkey
		labels[i] = b.Label
	}
	shortcutOverlay := common.NewShortcutOverlay(keyMap)
	shortcutOverlay.SetHotkeys(hotkeys, labels)

	footer := common.NewFooter(shortcutOverlay)
	footer.SetAccent(l.Display().Palette.Primary.Terminal(theme.Background))

	return model{
		launcher: l,
		buttons:  buttons,
		layout:   layout.NewLayout(0, 0, l.Display(), len(buttons)), // Will be updated on first WindowSizeMsg
		keyMap:   keyMap,
		footer:   footer,
		status:   components.NewLaunchStatus(),
		hit:      zoneHit,
		focused:  nav.NoFocus,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.footer.SetWidth(msg.Width)
		m.status.SetWidth(msg.Width)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			debug.Log("Exit key %q", msg.String())
			m.exiting = true
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Activate):
			return m.activate(m.focused)
		}

		ev := KeyEvent(msg, m.launcher.Scheme())
		m.focused = m.launcher.KeyPressed(m.focused, ev)
		return m, nil

	case tea.MouseMsg:
		index := m.buttonAt(msg)
		if index == nav.NoFocus {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.focused = index
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.focused = index
			return m.activate(index)
		}
		return m, nil

	case launchResultMsg:
		if msg.err != nil {
			m.status.Fail(msg.err.Error())
		} else {
			m.status.Succeed(msg.result.String())
		}
		return m, nil

	case spinner.TickMsg:
		return m, m.status.Update(msg)
	}

	return m, nil
}

// activate dispatches button index off the event loop so the spinner can run.
func (m model) activate(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.buttons) {
		return m, nil
	}

	label := m.buttons[index].Label
	startCmd := m.status.Start(fmt.Sprintf("Launching %s", label))
	l := m.launcher
	dispatchCmd := func() tea.Msg {
		result, err := l.Clicked(index)
		return launchResultMsg{index: index, result: result, err: err}
	}
	return m, tea.Batch(startCmd, dispatchCmd)
}

func (m model) buttonAt(msg tea.MouseMsg) int {
	for i := range m.buttons {
		if m.hit(zoneID(i), msg) {
			return i
		}
	}
	return nav.NoFocus
}

func zoneID(index int) string {
	return fmt.Sprintf("spree-button-%d", index)
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	rendered := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		content := layout.ButtonContent{
			Glyph: b.Glyph.Get(),
			Label: b.Label,
		}
		if b.Hotkey.HasKey {
			content.Hotkey = string(b.Hotkey.Key)
		}
		rendered[i] = zone.Mark(zoneID(i), m.layout.RenderButton(content, i == m.focused))
	}

	body := m.layout.Place(m.layout.RenderRow(rendered))
	status := lipgloss.PlaceHorizontal(m.layout.GetWidth(), lipgloss.Center, m.status.View())

	view := lipgloss.JoinVertical(lipgloss.Left, body, status, m.footer.View())
	return zone.Scan(view)
}
