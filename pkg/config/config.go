// Package config loads the launcher's TOML configuration and validates it
// into the runtime-ready form used by the navigation and dispatch code.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"spree/internal/debug"
	"spree/pkg/gui/icons"
	"spree/pkg/gui/theme"
	"spree/pkg/nav"
)

// Config is the parsed configuration file. It is read once at startup and
// not modified after Validate.
type Config struct {
	Primary   theme.Color `toml:"-"`
	Secondary theme.Color `toml:"-"`

	EnableTabNavigation   bool `toml:"enable_tab_navigation"`
	EnableVimNavigation   bool `toml:"enable_vim_navigation"`
	EnableArrowNavigation bool `toml:"enable_arrow_navigation"`

	BorderWidth float32     `toml:"border_width"`
	BorderColor theme.Color `toml:"-"`

	Padding float32 `toml:"padding"`
	Spacing float32 `toml:"spacing"`

	ButtonDim float32 `toml:"button_dim"`

	Buttons []Button `toml:"buttons"`

	// Warnings are non-fatal findings such as unknown keys.
	Warnings []string `toml:"-"`
}

// Button is one configured action.
type Button struct {
	Icon    string   `toml:"icon"`
	Command []string `toml:"command"`
	Key     *string  `toml:"key"`

	// Resolved holds the icon markup once Parse has read it.
	Resolved icons.Icon `toml:"-"`
}

// Modes returns the enabled navigation modes.
func (c *Config) Modes() nav.Modes {
	return nav.Modes{
		Tab:   c.EnableTabNavigation,
		Vim:   c.EnableVimNavigation,
		Arrow: c.EnableArrowNavigation,
	}
}

// Palette returns the configured colours.
func (c *Config) Palette() theme.Palette {
	return theme.Palette{Primary: c.Primary, Secondary: c.Secondary, Border: c.BorderColor}
}

var requiredKeys = []string{
	"primary",
	"secondary",
	"enable_tab_navigation",
	"enable_vim_navigation",
	"enable_arrow_navigation",
	"border_width",
	"border_color",
	"padding",
	"spacing",
	"button_dim",
	"buttons",
}

var colorKeys = map[string]bool{"primary": true, "secondary": true, "border_color": true}

// rawDocument holds the values Parse converts itself: colours, so their
// errors keep their type, and icons, so an absent key can be told apart from
// an empty one.
type rawDocument struct {
	Primary     any `toml:"primary"`
	Secondary   any `toml:"secondary"`
	BorderColor any `toml:"border_color"`

	Buttons []struct {
		Icon *string `toml:"icon"`
	} `toml:"buttons"`
}

// LoadError is returned when the configuration file cannot be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to open configuration file at '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError is returned for malformed TOML, bad colours and missing keys.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse configuration file at '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses the configuration at path. Relative icon paths are
// resolved against the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Parse(path, data, filepath.Dir(path))
}

// Parse decodes configuration text and resolves every button icon. path is
// only used in error messages.
func Parse(path string, data []byte, baseDir string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("missing required key '%s'", key)}
		}
	}

	var raw rawDocument
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	colors := []struct {
		key   string
		value any
		dst   *theme.Color
	}{
		{"primary", raw.Primary, &cfg.Primary},
		{"secondary", raw.Secondary, &cfg.Secondary},
		{"border_color", raw.BorderColor, &cfg.BorderColor},
	}
	for _, c := range colors {
		color, err := theme.DecodeColor(c.value)
		if err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("%s: %w", c.key, err)}
		}
		*c.dst = color
	}

	for i, btn := range cfg.Buttons {
		switch icon := raw.Buttons[i].Icon; {
		case icon == nil:
			return nil, &ParseError{Path: path, Err: fmt.Errorf("buttons[%d]: missing required key 'icon'", i)}
		case *icon == "":
			return nil, &ParseError{Path: path, Err: fmt.Errorf("buttons[%d]: empty icon", i)}
		}
		if btn.Command == nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("buttons[%d]: missing required key 'command'", i)}
		}
	}

	undecoded := md.Undecoded()
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		// Colours are decoded separately, tables included.
		if colorKeys[k[0]] {
			continue
		}
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	for _, k := range keys {
		warning := fmt.Sprintf("unknown configuration key '%s'", k)
		debug.Log("%s in %s", warning, path)
		cfg.Warnings = append(cfg.Warnings, warning)
	}

	for i := range cfg.Buttons {
		icon, err := icons.Resolve(cfg.Buttons[i].Icon, baseDir)
		if err != nil {
			return nil, fmt.Errorf("button #%d: %w", i, err)
		}
		cfg.Buttons[i].Resolved = icon
	}

	return &cfg, nil
}
