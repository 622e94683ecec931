// Package launcher ties the validated configuration to the runtime: it owns
// the pre-themed button data, the navigator and the dispatcher, and is handed
// read-only to whichever front end draws the menu.
package launcher

import (
	"spree/pkg/config"
	"spree/pkg/gui/icons"
	"spree/pkg/gui/theme"
	"spree/pkg/nav"
)

// Frontend draws the menu and feeds input back into a Launcher. It calls
// KeyPressed on every key, Clicked on every confirmed selection and Exit when
// the user leaves.
type Frontend interface {
	Run(l *Launcher) error
}

// Display carries the properties a front end applies once at startup.
type Display struct {
	Palette     theme.Palette
	BorderWidth float32
	Padding     float32
	Spacing     float32
	ButtonDim   float32
}

// ButtonData is everything a front end needs to draw one button.
type ButtonData struct {
	Index   int
	Icon    icons.Variants
	Glyph   icons.Glyph
	Label   string
	Hotkey  nav.Hotkey
	Command []string
}

// Options tune how a Launcher is built.
type Options struct {
	DryRun bool
	// Scheme is the front end's key naming; the zero value selects
	// nav.DefaultScheme.
	Scheme nav.KeyScheme
	// Exit replaces os.Exit for the exit action.
	Exit func(code int)
}

// Launcher is the immutable runtime handle created once at startup.
type Launcher struct {
	display    Display
	buttons    []ButtonData
	navigator  *nav.Navigator
	dispatcher *Dispatcher
}

// New validates cfg and prepares the themed icons. Any error is fatal.
func New(cfg *config.Config, opts Options) (*Launcher, error) {
	scheme := opts.Scheme
	if scheme == (nav.KeyScheme{}) {
		scheme = nav.DefaultScheme
	}

	hotkeys, err := config.Validate(cfg, scheme)
	if err != nil {
		return nil, err
	}

	themer := icons.NewThemer()
	buttons := make([]ButtonData, len(cfg.Buttons))
	commands := make([][]string, len(cfg.Buttons))
	for i, btn := range cfg.Buttons {
		commands[i] = append([]string(nil), btn.Command...)
		buttons[i] = ButtonData{
			Index:   i,
			Icon:    themer.Theme(btn.Resolved.Content, cfg.Primary, cfg.Secondary),
			Glyph:   btn.Resolved.Glyph,
			Label:   btn.Resolved.Label,
			Hotkey:  hotkeys[i],
			Command: append([]string(nil), btn.Command...),
		}
	}

	return &Launcher{
		display: Display{
			Palette:     cfg.Palette(),
			BorderWidth: cfg.BorderWidth,
			Padding:     cfg.Padding,
			Spacing:     cfg.Spacing,
			ButtonDim:   cfg.ButtonDim,
		},
		buttons:    buttons,
		navigator:  nav.NewNavigator(len(buttons), cfg.Modes(), hotkeys, scheme),
		dispatcher: NewDispatcher(commands, opts.DryRun, opts.Exit),
	}, nil
}

// Display returns the theme and layout properties.
func (l *Launcher) Display() Display {
	return l.display
}

// Buttons returns the per-button data in configuration order.
// The returned commands are copies; editing them does not change what a
// click runs.
func (l *Launcher) Buttons() []ButtonData {
	out := append([]ButtonData(nil), l.buttons...)
	for i := range out {
		out[i].Command = append([]string(nil), out[i].Command...)
	}
	return out
}

// Len is the number of buttons.
func (l *Launcher) Len() int {
	return len(l.buttons)
}

// Modes returns the enabled navigation modes.
func (l *Launcher) Modes() nav.Modes {
	return l.navigator.Modes()
}

// Scheme returns the key naming scheme the launcher was validated against.
func (l *Launcher) Scheme() nav.KeyScheme {
	return l.navigator.Scheme()
}

// KeyPressed returns the focus index after ev.
func (l *Launcher) KeyPressed(selected int, ev nav.KeyEvent) int {
	return l.navigator.Next(selected, ev)
}

// Clicked dispatches button index.
func (l *Launcher) Clicked(index int) (Result, error) {
	return l.dispatcher.Dispatch(index)
}

// Exit runs the reserved exit action.
func (l *Launcher) Exit() {
	l.dispatcher.Exit()
}
