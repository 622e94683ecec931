// Package nav computes the next focused button from a key press.
//
// Focus is an index into the button list, or -1 when nothing is focused.
// Next is total: every input has a defined result and unknown keys clear the
// focus.
package nav

// NoFocus is the focus index meaning no button is highlighted.
const NoFocus = -1

// Modifiers held during a key press.
type Modifiers struct {
	Control bool
	Alt     bool
	Meta    bool
	Shift   bool
}

// Any reports whether any modifier is held.
func (m Modifiers) Any() bool {
	return m.Control || m.Alt || m.Meta || m.Shift
}

// AnyButShift reports whether control, alt or meta is held.
func (m Modifiers) AnyButShift() bool {
	return m.Control || m.Alt || m.Meta
}

// KeyEvent is a key press as text in the front end's key naming scheme.
type KeyEvent struct {
	Text      string
	Modifiers Modifiers
}

// Modes selects which navigation styles are active.
type Modes struct {
	Tab   bool
	Vim   bool
	Arrow bool
}

// KeyScheme says how special keys are spelled in KeyEvent.Text. It belongs to
// the front end; the validator uses it to reject reserved hotkeys.
type KeyScheme struct {
	Tab        rune
	Return     rune
	LeftArrow  rune
	RightArrow rune
}

// DefaultScheme spells special keys as control characters and private-use
// code points.
var DefaultScheme = KeyScheme{
	Tab:        '\t',
	Return:     '\n',
	LeftArrow:  '\uf702',
	RightArrow: '\uf703',
}

// Reserved returns the keys that can never be bound as hotkeys.
func (s KeyScheme) Reserved() []rune {
	return []rune{s.Tab, s.Return, s.LeftArrow, s.RightArrow}
}

// IsReserved reports whether r is one of the scheme's special keys.
func (s KeyScheme) IsReserved(r rune) bool {
	for _, k := range s.Reserved() {
		if r == k {
			return true
		}
	}
	return false
}

// Hotkey ties a button index to its optional hotkey.
type Hotkey struct {
	Index  uint16
	Key    rune
	HasKey bool
}

// Next returns the focus index after ev.
func Next(selected, total int, ev KeyEvent, modes Modes, hotkeys []Hotkey, scheme KeyScheme) int {
	if total <= 0 {
		return NoFocus
	}

	left := selected - 1
	if selected <= 0 || selected >= total {
		left = total - 1
	}
	right := selected + 1
	if selected < 0 || selected >= total-1 {
		right = 0
	}

	mods := ev.Modifiers

	if modes.Tab && ev.Text == string(scheme.Tab) {
		if mods.AnyButShift() {
			return NoFocus
		}
		if mods.Shift {
			return left
		}
		return right
	}

	if modes.Vim && ev.Text == "h" {
		if mods.Any() {
			return NoFocus
		}
		return left
	}

	if modes.Vim && ev.Text == "l" {
		if mods.Any() {
			return NoFocus
		}
		return right
	}

	if modes.Arrow && ev.Text == string(scheme.LeftArrow) {
		if mods.Any() {
			return NoFocus
		}
		return left
	}

	if modes.Arrow && ev.Text == string(scheme.RightArrow) {
		if mods.Any() {
			return NoFocus
		}
		return right
	}

	for _, hk := range hotkeys {
		if hk.HasKey && ev.Text == string(hk.Key) {
			return int(hk.Index)
		}
	}

	return NoFocus
}

// Navigator binds everything Next needs except the current focus and event.
type Navigator struct {
	total   int
	modes   Modes
	hotkeys []Hotkey
	scheme  KeyScheme
}

// NewNavigator returns a Navigator over total buttons.
func NewNavigator(total int, modes Modes, hotkeys []Hotkey, scheme KeyScheme) *Navigator {
	return &Navigator{
		total:   total,
		modes:   modes,
		hotkeys: append([]Hotkey(nil), hotkeys...),
		scheme:  scheme,
	}
}

// Next returns the focus index after ev.
func (n *Navigator) Next(selected int, ev KeyEvent) int {
	return Next(selected, n.total, ev, n.modes, n.hotkeys, n.scheme)
}

// Total is the number of buttons.
func (n *Navigator) Total() int {
	return n.total
}

// Modes returns the enabled navigation modes.
func (n *Navigator) Modes() Modes {
	return n.modes
}

// Scheme returns the key naming scheme.
func (n *Navigator) Scheme() KeyScheme {
	return n.scheme
}
