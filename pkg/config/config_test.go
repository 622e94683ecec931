package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spree/pkg/gui/icons"
	"spree/pkg/gui/theme"
)

const header = `
primary = "#fff"
secondary = { red = 10, green = 20, blue = 30, alpha = 128 }
enable_tab_navigation = true
enable_vim_navigation = false
enable_arrow_navigation = true
border_width = 2
border_color = "#112233"
padding = 10.5
spacing = 5
button_dim = 100
`

func withButtons(buttons ...string) string {
	return header + strings.Join(buttons, "\n")
}

func button(icon, key string) string {
	s := fmt.Sprintf("[[buttons]]\nicon = %q\ncommand = [\"true\"]\n", icon)
	if key != "" {
		s += fmt.Sprintf("key = %q\n", key)
	}
	return s
}

func TestParseFullConfig(t *testing.T) {
	input := withButtons(
		`[[buttons]]
icon = "poweroff"
command = ["systemctl", "poweroff"]
key = "p"
`,
		`[[buttons]]
icon = "lock"
command = ["loginctl", "lock-session"]
`,
	)

	cfg, err := Parse("test.toml", []byte(input), "")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Primary != (theme.Color{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("primary = %+v", cfg.Primary)
	}
	if cfg.Secondary != (theme.Color{R: 10, G: 20, B: 30, A: 128}) {
		t.Errorf("secondary = %+v", cfg.Secondary)
	}
	if cfg.BorderColor != (theme.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Errorf("border color = %+v", cfg.BorderColor)
	}
	if !cfg.EnableTabNavigation || cfg.EnableVimNavigation || !cfg.EnableArrowNavigation {
		t.Errorf("navigation toggles = %v %v %v", cfg.EnableTabNavigation, cfg.EnableVimNavigation, cfg.EnableArrowNavigation)
	}
	if cfg.BorderWidth != 2 || cfg.Padding != 10.5 || cfg.Spacing != 5 || cfg.ButtonDim != 100 {
		t.Errorf("layout = %v %v %v %v", cfg.BorderWidth, cfg.Padding, cfg.Spacing, cfg.ButtonDim)
	}
	if len(cfg.Buttons) != 2 {
		t.Fatalf("buttons = %d, want 2", len(cfg.Buttons))
	}
	if got := cfg.Buttons[0].Command; len(got) != 2 || got[0] != "systemctl" || got[1] != "poweroff" {
		t.Errorf("command = %v", got)
	}
	if cfg.Buttons[0].Key == nil || *cfg.Buttons[0].Key != "p" {
		t.Errorf("key = %v", cfg.Buttons[0].Key)
	}
	if cfg.Buttons[1].Key != nil {
		t.Errorf("second button should have no key")
	}
	if !cfg.Buttons[0].Resolved.Builtin || !strings.Contains(cfg.Buttons[0].Resolved.Content, icons.PrimaryToken) {
		t.Errorf("icon not resolved")
	}
	if len(cfg.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", cfg.Warnings)
	}

	modes := cfg.Modes()
	if !modes.Tab || modes.Vim || !modes.Arrow {
		t.Errorf("modes = %+v", modes)
	}
	if p := cfg.Palette(); p.Border != cfg.BorderColor || p.Primary != cfg.Primary {
		t.Errorf("palette = %+v", p)
	}
}

func TestParseMissingKeys(t *testing.T) {
	for _, key := range requiredKeys {
		t.Run(key, func(t *testing.T) {
			var lines []string
			for _, line := range strings.Split(withButtons(button("lock", "")), "\n") {
				if strings.HasPrefix(line, key+" ") {
					continue
				}
				if key == "buttons" && (strings.HasPrefix(line, "[[buttons]]") || strings.HasPrefix(line, "icon") || strings.HasPrefix(line, "command")) {
					continue
				}
				lines = append(lines, line)
			}

			_, err := Parse("test.toml", []byte(strings.Join(lines, "\n")), "")
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("error %q does not name %q", err, key)
			}
		})
	}
}

func TestParseButtonMissingFields(t *testing.T) {
	inputs := map[string]string{
		"icon":    "[[buttons]]\ncommand = [\"true\"]\n",
		"command": "[[buttons]]\nicon = \"lock\"\n",
	}
	for field, btn := range inputs {
		_, err := Parse("test.toml", []byte(withButtons(btn)), "")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%s: error = %v, want *ParseError", field, err)
		}
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("%s: error %q does not name the field", field, err)
		}
	}
}

func TestParseEmptyIcon(t *testing.T) {
	_, err := Parse("test.toml", []byte(withButtons(button("", ""))), "")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if !strings.Contains(err.Error(), "buttons[0]: empty icon") {
		t.Fatalf("error = %q, want empty icon message", err)
	}
	if strings.Contains(err.Error(), "missing") {
		t.Fatalf("empty icon reported as missing: %q", err)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"primary = ",
		strings.Replace(withButtons(button("lock", "")), `primary = "#fff"`, `primary = "fff"`, 1),
		strings.Replace(withButtons(button("lock", "")), `primary = "#fff"`, `primary = "#ab"`, 1),
		strings.Replace(withButtons(button("lock", "")), "padding = 10.5", `padding = "wide"`, 1),
		strings.Replace(withButtons(button("lock", "")), `command = ["true"]`, `command = "true"`, 1),
	}
	for _, input := range inputs {
		_, err := Parse("test.toml", []byte(input), "")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("error = %v, want *ParseError for input:\n%s", err, input)
		}
	}
}

func TestParseColorErrorMessageSurfaces(t *testing.T) {
	input := strings.Replace(withButtons(button("lock", "")), `primary = "#fff"`, `primary = "#zzz"`, 1)
	_, err := Parse("test.toml", []byte(input), "")
	if err == nil || !strings.Contains(err.Error(), "invalid hexadecimal digit") {
		t.Fatalf("error = %v, want colour reason in message", err)
	}
}

func TestParseColorErrorIsReachable(t *testing.T) {
	input := strings.Replace(withButtons(button("lock", "")), `primary = "#fff"`, `primary = "abc"`, 1)
	_, err := Parse("test.toml", []byte(input), "")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	var colorErr *theme.ColorError
	if !errors.As(err, &colorErr) {
		t.Fatalf("error = %v, want *theme.ColorError in chain", err)
	}
	if colorErr.Reason != theme.MissingHex || colorErr.Value != "abc" {
		t.Fatalf("color error = %+v", colorErr)
	}
	if !strings.Contains(err.Error(), "primary: invalid color 'abc'") {
		t.Fatalf("error message = %q", err)
	}
}

func TestParseColorTableErrorNamesKey(t *testing.T) {
	input := strings.Replace(withButtons(button("lock", "")), "alpha = 128", "alpha = 300", 1)
	_, err := Parse("test.toml", []byte(input), "")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || !strings.Contains(err.Error(), "secondary:") {
		t.Fatalf("error = %v, want *ParseError naming secondary", err)
	}
}

func TestParseUnknownKeysWarn(t *testing.T) {
	input := "colour = \"#fff\"\n" + withButtons(button("lock", ""))
	cfg, err := Parse("test.toml", []byte(input), "")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "colour") {
		t.Fatalf("warnings = %v", cfg.Warnings)
	}
}

func TestParseCustomIconRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	svg := `<svg fill="%secondaryColor%"/>`
	if err := os.WriteFile(filepath.Join(dir, "moon.svg"), []byte(svg), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse("test.toml", []byte(withButtons(button("moon.svg", ""))), dir)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Buttons[0].Resolved.Content != svg {
		t.Fatalf("icon content = %q", cfg.Buttons[0].Resolved.Content)
	}

	_, err = Parse("test.toml", []byte(withButtons(button("missing.svg", ""))), dir)
	var iconErr *icons.IconError
	if !errors.As(err, &iconErr) {
		t.Fatalf("error = %v, want *icons.IconError", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(withButtons(button("reboot", "r"))), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.Buttons) != 1 || cfg.Buttons[0].Resolved.Label != "reboot" {
		t.Fatalf("unexpected buttons: %+v", cfg.Buttons)
	}

	_, err = Load(filepath.Join(dir, "absent.toml"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadError should unwrap to os.ErrNotExist")
	}
}

func TestGetConfigDir(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)
	if dir, err := GetConfigDir(); err != nil || dir != xdg {
		t.Fatalf("GetConfigDir() = %q, %v; want %q", dir, err, xdg)
	}

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(xdg, "missing"))
	if _, err := GetConfigDir(); !errors.Is(err, ErrNoConfigDir) {
		t.Fatalf("GetConfigDir() error = %v, want ErrNoConfigDir", err)
	}

	if err := os.Mkdir(filepath.Join(home, ".config"), 0755); err != nil {
		t.Fatal(err)
	}
	if dir, err := GetConfigDir(); err != nil || dir != filepath.Join(home, ".config") {
		t.Fatalf("GetConfigDir() = %q, %v", dir, err)
	}

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".config", "spree", "config.toml"); path != want {
		t.Fatalf("DefaultPath() = %q, want %q", path, want)
	}
}
