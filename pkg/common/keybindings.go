package common

import (
	"github.com/charmbracelet/bubbles/key"

	"spree/pkg/nav"
)

// KeyMap lists the launcher's built-in keys. Focus movement itself is decided
// by nav.Next; these bindings drive the footer hints and the activate/exit
// actions, which are not part of navigation.
type KeyMap struct {
	// Navigation - each group is enabled by its config toggle
	TabNext    key.Binding // Tab
	TabPrev    key.Binding // Shift+Tab
	VimLeft    key.Binding // h
	VimRight   key.Binding // l
	ArrowLeft  key.Binding // ←
	ArrowRight key.Binding // →

	// Actions - always available
	Activate key.Binding // Enter - run focused button
	Exit     key.Binding // Esc, Ctrl+C
}

// NewKeyMap creates the launcher keymap with navigation groups enabled per modes
func NewKeyMap(modes nav.Modes) *KeyMap {
	k := &KeyMap{
		TabNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		TabPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		VimLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "left"),
		),
		VimRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "right"),
		),
		ArrowLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		ArrowRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "run"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "exit"),
		),
	}
	k.SetModes(modes)
	return k
}

// SetModes enables or disables the navigation groups
func (k *KeyMap) SetModes(modes nav.Modes) {
	k.TabNext.SetEnabled(modes.Tab)
	k.TabPrev.SetEnabled(modes.Tab)
	k.VimLeft.SetEnabled(modes.Vim)
	k.VimRight.SetEnabled(modes.Vim)
	k.ArrowLeft.SetEnabled(modes.Arrow)
	k.ArrowRight.SetEnabled(modes.Arrow)
}

// ShortHelp returns the bindings shown in the footer
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.ArrowLeft,
		k.ArrowRight,
		k.VimLeft,
		k.VimRight,
		k.TabNext,
		k.TabPrev,
		k.Activate,
		k.Exit,
	}
}

// FullHelp groups the bindings for a multi-column help view
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ArrowLeft, k.ArrowRight},
		{k.VimLeft, k.VimRight},
		{k.TabNext, k.TabPrev},
		{k.Activate, k.Exit},
	}
}
