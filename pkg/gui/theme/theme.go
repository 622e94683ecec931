// Package theme holds colour parsing and the styles shared by the launcher's
// terminal front end.
package theme

import "github.com/charmbracelet/lipgloss"

// Fixed chrome colours that are not user configurable.
var (
	TextDescription = "#c9c9c9" // footer key hints
	TextMuted       = "#7a7a7a" // footer descriptions, separators
	ErrorStatus     = "#ff5555" // failed launches
	SuccessStatus   = "#50fa7b" // successful launches
	Background      = Color{R: 0x28, G: 0x2a, B: 0x36, A: 255}
)

// Palette is the user-configured part of the theme.
type Palette struct {
	Primary   Color
	Secondary Color
	Border    Color
}

// FocusedButton is drawn with the primary colour as the fill, which is the
// same mapping the icon themer uses for the focused SVG variant.
func (p Palette) FocusedButton() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Primary.Terminal(Background)).
		Foreground(p.Secondary.Terminal(Background)).
		Bold(true)
}

// UnfocusedButton swaps the two colours.
func (p Palette) UnfocusedButton() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Secondary.Terminal(Background)).
		Foreground(p.Primary.Terminal(Background))
}

// Frame is the outer border around the button row.
func (p Palette) Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border.Terminal(Background))
}
