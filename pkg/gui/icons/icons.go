// Package icons resolves button icons to SVG markup and terminal glyphs, and
// re-themes the markup for the focused and unfocused button states.
package icons

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

//go:embed assets/*.svg
var assets embed.FS

// Built-in icon tags accepted in the configuration.
const (
	PowerOff = "poweroff"
	Reboot   = "reboot"
	Lock     = "lock"
	Logout   = "logout"
)

// Glyph is a terminal stand-in for an icon, with Nerd Font and plain options.
type Glyph struct {
	NerdFont string
	Fallback string
}

var builtinGlyphs = map[string]Glyph{
	PowerOff: {NerdFont: "\uf011", Fallback: "⏻"}, // Nerd Font power-off
	Reboot:   {NerdFont: "\uf021", Fallback: "↻"}, // Nerd Font refresh
	Lock:     {NerdFont: "\uf023", Fallback: "◈"}, // Nerd Font lock
	Logout:   {NerdFont: "\uf08b", Fallback: "⇥"}, // Nerd Font sign-out
}

// CustomGlyph is shown for icons loaded from a file.
var CustomGlyph = Glyph{
	NerdFont: "\uf1c5", // Nerd Font image file
	Fallback: "◇",
}

// Icon is resolved icon content. Content is never modified after Resolve.
type Icon struct {
	Content string
	Builtin bool
	Label   string
	Glyph   Glyph
}

// IconError reports a custom icon that could not be read as UTF-8 text.
type IconError struct {
	Path string
	Err  error
}

func (e *IconError) Error() string {
	return fmt.Sprintf("failed to read icon '%s': %v", e.Path, e.Err)
}

func (e *IconError) Unwrap() error {
	return e.Err
}

// IsBuiltin reports whether spec names one of the embedded icons.
func IsBuiltin(spec string) bool {
	_, ok := builtinGlyphs[spec]
	return ok
}

// Resolve turns an icon spec into markup. Built-in tags are served from the
// embedded assets; anything else is read from disk, with relative paths taken
// from baseDir.
func Resolve(spec, baseDir string) (Icon, error) {
	if glyph, ok := builtinGlyphs[spec]; ok {
		data, err := assets.ReadFile("assets/" + spec + ".svg")
		if err != nil {
			// Assets are compiled in; a miss here is a build problem.
			panic(fmt.Sprintf("missing embedded icon %q: %v", spec, err))
		}
		return Icon{Content: string(data), Builtin: true, Label: spec, Glyph: glyph}, nil
	}

	path := spec
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Icon{}, &IconError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return Icon{}, &IconError{Path: path, Err: fmt.Errorf("stream did not contain valid UTF-8")}
	}

	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Icon{Content: string(data), Label: label, Glyph: CustomGlyph}, nil
}

var useNerdFonts *bool

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
		"tmux-256color", "xterm-256color", "xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the glyph for the current terminal.
func (g Glyph) Get() string {
	if hasNerdFonts() {
		return g.NerdFont
	}
	return g.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}
