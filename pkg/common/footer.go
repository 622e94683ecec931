package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"spree/pkg/gui/theme"
)

// Footer manages the bottom bar with keyboard hints
type Footer struct {
	width           int
	shortcutOverlay *ShortcutOverlay
	accent          lipgloss.Color
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextMuted))

	footerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NewFooter creates a new footer component
func NewFooter(overlay *ShortcutOverlay) *Footer {
	return &Footer{shortcutOverlay: overlay}
}

// SetWidth updates the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetAccent sets the colour used for hotkey hints
func (f *Footer) SetAccent(c lipgloss.Color) {
	f.accent = c
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 || f.shortcutOverlay == nil {
		return ""
	}

	shortcuts := f.shortcutOverlay.FormatShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	var parts []string
	prev := shortcuts[0]
	for i, shortcut := range shortcuts {
		if i > 0 {
			sep := " • "
			if prev.IsHotkey != shortcut.IsHotkey || prev.IsAction != shortcut.IsAction {
				sep = " │ "
			}
			parts = append(parts, footerSeparatorStyle.Render(sep))
		}

		keyStyle := footerKeyStyle
		if shortcut.IsHotkey && f.accent != "" {
			keyStyle = keyStyle.Foreground(f.accent)
		}
		parts = append(parts, keyStyle.Render(shortcut.Key)+" "+footerDescStyle.Render(shortcut.Description))
		prev = shortcut
	}

	content := strings.Join(parts, "")
	inner := f.width - footerStyle.GetHorizontalFrameSize()
	if inner > 0 && lipgloss.Width(content) > inner {
		content = truncate.StringWithTail(content, uint(inner), "…")
	}

	return lipgloss.PlaceHorizontal(f.width, lipgloss.Center, footerStyle.Render(content))
}
