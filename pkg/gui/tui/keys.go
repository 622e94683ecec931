package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"spree/pkg/nav"
)

// KeyEvent spells a bubbletea key press in the launcher's key scheme.
// Keys with no single-character spelling (function keys, up/down, ...) keep
// bubbletea's name, which never matches a hotkey.
func KeyEvent(msg tea.KeyMsg, scheme nav.KeyScheme) nav.KeyEvent {
	mods := nav.Modifiers{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyTab:
		return nav.KeyEvent{Text: string(scheme.Tab), Modifiers: mods}
	case tea.KeyShiftTab:
		mods.Shift = true
		return nav.KeyEvent{Text: string(scheme.Tab), Modifiers: mods}
	case tea.KeyEnter:
		return nav.KeyEvent{Text: string(scheme.Return), Modifiers: mods}

	case tea.KeyLeft:
		return nav.KeyEvent{Text: string(scheme.LeftArrow), Modifiers: mods}
	case tea.KeyShiftLeft:
		mods.Shift = true
		return nav.KeyEvent{Text: string(scheme.LeftArrow), Modifiers: mods}
	case tea.KeyCtrlLeft:
		mods.Control = true
		return nav.KeyEvent{Text: string(scheme.LeftArrow), Modifiers: mods}
	case tea.KeyCtrlShiftLeft:
		mods.Control, mods.Shift = true, true
		return nav.KeyEvent{Text: string(scheme.LeftArrow), Modifiers: mods}

	case tea.KeyRight:
		return nav.KeyEvent{Text: string(scheme.RightArrow), Modifiers: mods}
	case tea.KeyShiftRight:
		mods.Shift = true
		return nav.KeyEvent{Text: string(scheme.RightArrow), Modifiers: mods}
	case tea.KeyCtrlRight:
		mods.Control = true
		return nav.KeyEvent{Text: string(scheme.RightArrow), Modifiers: mods}
	case tea.KeyCtrlShiftRight:
		mods.Control, mods.Shift = true, true
		return nav.KeyEvent{Text: string(scheme.RightArrow), Modifiers: mods}

	case tea.KeySpace:
		return nav.KeyEvent{Text: " ", Modifiers: mods}
	case tea.KeyRunes:
		return nav.KeyEvent{Text: string(msg.Runes), Modifiers: mods}
	}

	// Ctrl+letter arrives as a control code; report the letter with control held.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		mods.Control = true
		return nav.KeyEvent{Text: string(rune('a' + int(msg.Type-tea.KeyCtrlA))), Modifiers: mods}
	}

	return nav.KeyEvent{Text: msg.String(), Modifiers: mods}
}
