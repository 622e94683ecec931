package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"spree/pkg/launcher"
)

// Configured sizes are in pixels; a terminal cell is roughly twice as tall as
// it is wide.
const (
	PixelsPerColumn = 10
	PixelsPerRow    = 20
)

const (
	TopPaddingRows   = 1
	StatusRows       = 1
	FooterRows       = 1
	BottomMarginRows = 1
	HorizontalMargin = 2

	MinButtonWidth  = 5
	MinButtonHeight = 3
)

// Layout places the button row inside the terminal
type Layout struct {
	width   int
	height  int
	display launcher.Display
	count   int

	// Cell sizes after clamping
	buttonWidth  int
	buttonHeight int
	spacing      int
	padX         int
	padY         int
	border       bool
}

// NewLayout creates a layout for count buttons in a width x height terminal
func NewLayout(width, height int, display launcher.Display, count int) *Layout {
	l := &Layout{
		width:   width,
		height:  height,
		display: display,
		count:   count,
	}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// Columns converts a pixel length to terminal columns, rounding to nearest.
func Columns(px float32) int {
	return int(px/PixelsPerColumn + 0.5)
}

// Rows converts a pixel length to terminal rows, rounding to nearest.
func Rows(px float32) int {
	return int(px/PixelsPerRow + 0.5)
}

// calculate derives cell sizes from the display floats, then shrinks spacing,
// padding and finally the buttons until the row fits the terminal.
func (l *Layout) calculate() {
	d := l.display
	l.border = d.BorderWidth > 0
	l.buttonWidth = max(Columns(d.ButtonDim), MinButtonWidth)
	l.buttonHeight = max(Rows(d.ButtonDim), MinButtonHeight)
	l.spacing = Columns(d.Spacing)
	l.padX = Columns(d.Padding)
	l.padY = Rows(d.Padding)

	if l.width <= 0 || l.height <= 0 || l.count == 0 {
		return
	}

	availableWidth := l.width - HorizontalMargin*2
	for l.rowWidth() > availableWidth && l.spacing > 0 {
		l.spacing--
	}
	for l.rowWidth() > availableWidth && l.padX > 0 {
		l.padX--
	}
	for l.rowWidth() > availableWidth && l.buttonWidth > MinButtonWidth {
		l.buttonWidth--
	}

	availableHeight := l.height - TopPaddingRows - StatusRows - FooterRows - BottomMarginRows
	for l.rowHeight() > availableHeight && l.padY > 0 {
		l.padY--
	}
	for l.rowHeight() > availableHeight && l.buttonHeight > MinButtonHeight {
		l.buttonHeight--
	}
}

func (l *Layout) frame() int {
	if l.border {
		return 2
	}
	return 0
}

// rowWidth is the full width of the framed button row
func (l *Layout) rowWidth() int {
	if l.count == 0 {
		return l.frame() + l.padX*2
	}
	return l.count*l.buttonWidth + (l.count-1)*l.spacing + l.padX*2 + l.frame()
}

// rowHeight is the full height of the framed button row
func (l *Layout) rowHeight() int {
	return l.buttonHeight + l.padY*2 + l.frame()
}

// ButtonSize returns a button's size in cells
func (l *Layout) ButtonSize() (width, height int) {
	return l.buttonWidth, l.buttonHeight
}

// Spacing returns the gap between buttons in columns
func (l *Layout) Spacing() int {
	return l.spacing
}

// Padding returns the frame padding in columns and rows
func (l *Layout) Padding() (x, y int) {
	return l.padX, l.padY
}

// RowSize returns the size of the framed button row
func (l *Layout) RowSize() (width, height int) {
	return l.rowWidth(), l.rowHeight()
}

// GetWidth returns the layout width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the layout height
func (l *Layout) GetHeight() int {
	return l.height
}

// ButtonContent is what goes inside one button box.
type ButtonContent struct {
	Glyph  string
	Label  string
	Hotkey string
}

// RenderButton draws a single button. Focused buttons fill with the primary
// colour, unfocused ones with the secondary.
func (l *Layout) RenderButton(content ButtonContent, focused bool) string {
	style := l.display.Palette.UnfocusedButton()
	if focused {
		style = l.display.Palette.FocusedButton()
	}

	lines := []string{content.Glyph, runewidth.Truncate(content.Label, l.buttonWidth, "…")}
	if content.Hotkey != "" && l.buttonHeight > MinButtonHeight {
		lines = append(lines, runewidth.Truncate("["+content.Hotkey+"]", l.buttonWidth, "…"))
	}

	return style.
		Width(l.buttonWidth).
		Height(l.buttonHeight).
		MaxHeight(l.buttonHeight).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// RenderRow joins rendered buttons with the configured spacing and wraps them
// in the border frame.
func (l *Layout) RenderRow(buttons []string) string {
	gap := strings.Repeat(" ", l.spacing)

	var parts []string
	for i, b := range buttons {
		if i > 0 && l.spacing > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	frame := lipgloss.NewStyle().Padding(l.padY, l.padX)
	if l.border {
		frame = l.display.Palette.Frame().Padding(l.padY, l.padX)
	}
	return frame.Render(row)
}

// Place centres the row in the terminal above the status and footer lines.
func (l *Layout) Place(row string) string {
	bodyHeight := l.height - StatusRows - FooterRows - BottomMarginRows
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return lipgloss.Place(l.width, bodyHeight, lipgloss.Center, lipgloss.Center, row)
}
