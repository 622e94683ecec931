// Package common holds the launcher keymap and the footer that advertises it.
package common

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"spree/pkg/nav"
)

// Shortcut is a key hint shown in the footer.
type Shortcut struct {
	Key         string
	Description string
	IsAction    bool // activate/exit rather than navigation
	IsHotkey    bool // a button's configured hotkey
}

// ShortcutOverlay collects the hints for the current configuration.
type ShortcutOverlay struct {
	keyMap  *KeyMap
	hotkeys []nav.Hotkey
	labels  []string
}

// NewShortcutOverlay creates a new shortcut overlay
func NewShortcutOverlay(keyMap *KeyMap) *ShortcutOverlay {
	return &ShortcutOverlay{keyMap: keyMap}
}

// SetHotkeys registers button hotkeys and the labels to show beside them.
func (s *ShortcutOverlay) SetHotkeys(hotkeys []nav.Hotkey, labels []string) {
	s.hotkeys = hotkeys
	s.labels = labels
}

// FormatShortcuts returns the enabled shortcuts, navigation first, then
// hotkeys, then actions.
func (s *ShortcutOverlay) FormatShortcuts() []Shortcut {
	var navigation, actions []Shortcut

	for _, binding := range s.keyMap.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		sc := Shortcut{
			Key:         binding.Help().Key,
			Description: binding.Help().Desc,
			IsAction:    s.isAction(binding),
		}
		if sc.IsAction {
			actions = append(actions, sc)
		} else {
			navigation = append(navigation, sc)
		}
	}

	shortcuts := navigation
	for _, hk := range s.hotkeys {
		if !hk.HasKey {
			continue
		}
		desc := fmt.Sprintf("#%d", hk.Index)
		if int(hk.Index) < len(s.labels) && s.labels[hk.Index] != "" {
			desc = s.labels[hk.Index]
		}
		shortcuts = append(shortcuts, Shortcut{Key: string(hk.Key), Description: desc, IsHotkey: true})
	}

	return append(shortcuts, actions...)
}

func (s *ShortcutOverlay) isAction(binding key.Binding) bool {
	helpKey := binding.Help().Key
	return helpKey == s.keyMap.Activate.Help().Key || helpKey == s.keyMap.Exit.Help().Key
}
