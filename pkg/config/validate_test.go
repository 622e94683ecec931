package config

import (
	"errors"
	"strings"
	"testing"

	"spree/pkg/nav"
)

func strPtr(s string) *string {
	return &s
}

func configWith(n int) *Config {
	cfg := &Config{}
	for i := 0; i < n; i++ {
		cfg.Buttons = append(cfg.Buttons, Button{Icon: "lock", Command: []string{"true"}})
	}
	return cfg
}

func validationKind(t *testing.T, err error) ValidationKind {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	return vErr.Kind
}

func TestValidateButtonCount(t *testing.T) {
	tests := []struct {
		count   int
		wantErr bool
		kind    ValidationKind
	}{
		{0, true, NoButtons},
		{1, false, 0},
		{MaxButtons, false, 0},
		{MaxButtons + 1, true, TooManyButtons},
	}

	for _, tt := range tests {
		hotkeys, err := Validate(configWith(tt.count), nav.DefaultScheme)
		if tt.wantErr {
			if got := validationKind(t, err); got != tt.kind {
				t.Errorf("count %d: kind = %v, want %v", tt.count, got, tt.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("count %d: unexpected error %v", tt.count, err)
		}
		if len(hotkeys) != tt.count {
			t.Errorf("count %d: got %d hotkeys", tt.count, len(hotkeys))
		}
	}
}

func TestValidateTooManyMessage(t *testing.T) {
	_, err := Validate(configWith(11), nav.DefaultScheme)
	if err == nil || err.Error() != "too many buttons (current = 11, max = 10)" {
		t.Fatalf("error = %v", err)
	}
}

func TestValidateDerivesHotkeys(t *testing.T) {
	cfg := configWith(3)
	cfg.Buttons[0].Key = strPtr("p")
	cfg.Buttons[2].Key = strPtr("ß")

	hotkeys, err := Validate(cfg, nav.DefaultScheme)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []nav.Hotkey{
		{Index: 0, Key: 'p', HasKey: true},
		{Index: 1},
		{Index: 2, Key: 'ß', HasKey: true},
	}
	for i := range want {
		if hotkeys[i] != want[i] {
			t.Errorf("hotkeys[%d] = %+v, want %+v", i, hotkeys[i], want[i])
		}
	}
}

func TestValidateRejectsKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
		vim  bool
		kind ValidationKind
	}{
		{"multi character", "ab", false, InvalidKey},
		{"empty", "", false, InvalidKey},
		{"combining sequence", "e\u0301", false, InvalidKey},
		{"tab", "\t", false, ReservedKey},
		{"return", "\n", false, ReservedKey},
		{"left arrow", "\uf702", false, ReservedKey},
		{"right arrow", "\uf703", false, ReservedKey},
		{"vim h", "h", true, VimConflict},
		{"vim l", "l", true, VimConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := configWith(2)
			cfg.EnableVimNavigation = tt.vim
			cfg.Buttons[1].Key = strPtr(tt.key)

			_, err := Validate(cfg, nav.DefaultScheme)
			if got := validationKind(t, err); got != tt.kind {
				t.Fatalf("kind = %v, want %v (%v)", got, tt.kind, err)
			}
			var vErr *ValidationError
			errors.As(err, &vErr)
			if vErr.Index != 1 || vErr.Key != tt.key {
				t.Fatalf("error fields = %+v", vErr)
			}
		})
	}
}

func TestValidateVimKeysAllowedWhenVimDisabled(t *testing.T) {
	cfg := configWith(2)
	cfg.Buttons[0].Key = strPtr("h")
	cfg.Buttons[1].Key = strPtr("l")

	if _, err := Validate(cfg, nav.DefaultScheme); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUsesScheme(t *testing.T) {
	scheme := nav.KeyScheme{Tab: 'T', Return: 'R', LeftArrow: '<', RightArrow: '>'}
	cfg := configWith(1)
	cfg.Buttons[0].Key = strPtr("<")
	if got := validationKind(t, func() error { _, err := Validate(cfg, scheme); return err }()); got != ReservedKey {
		t.Fatalf("kind = %v, want ReservedKey", got)
	}

	cfg.Buttons[0].Key = strPtr("\t")
	if _, err := Validate(cfg, scheme); err != nil {
		t.Fatalf("tab is not reserved in this scheme: %v", err)
	}
}

func TestValidateEmptyCommand(t *testing.T) {
	cfg := configWith(3)
	cfg.Buttons[2].Command = []string{}

	_, err := Validate(cfg, nav.DefaultScheme)
	if got := validationKind(t, err); got != EmptyCommand {
		t.Fatalf("kind = %v, want EmptyCommand", got)
	}
	if !strings.Contains(err.Error(), "#2") {
		t.Fatalf("error %q does not name the button", err)
	}
}

func TestValidateNegativeDimensions(t *testing.T) {
	setters := map[string]func(*Config){
		"border_width": func(c *Config) { c.BorderWidth = -1 },
		"padding":      func(c *Config) { c.Padding = -0.5 },
		"spacing":      func(c *Config) { c.Spacing = -2 },
		"button_dim":   func(c *Config) { c.ButtonDim = -100 },
	}
	for field, set := range setters {
		cfg := configWith(1)
		set(cfg)
		_, err := Validate(cfg, nav.DefaultScheme)
		if got := validationKind(t, err); got != NegativeDimension {
			t.Fatalf("%s: kind = %v", field, got)
		}
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("%s: error %q does not name the field", field, err)
		}
	}
}

func TestValidateFirstFailingButtonWins(t *testing.T) {
	cfg := configWith(3)
	cfg.EnableVimNavigation = true
	cfg.Buttons[1].Key = strPtr("xy")
	cfg.Buttons[2].Key = strPtr("h")

	_, err := Validate(cfg, nav.DefaultScheme)
	if got := validationKind(t, err); got != InvalidKey {
		t.Fatalf("kind = %v, want InvalidKey from button #1", got)
	}
}

func TestDuplicateHotkeys(t *testing.T) {
	hotkeys := []nav.Hotkey{
		{Index: 0, Key: 'a', HasKey: true},
		{Index: 1},
		{Index: 2, Key: 'a', HasKey: true},
		{Index: 3, Key: 'b', HasKey: true},
	}
	dups := DuplicateHotkeys(hotkeys)
	if len(dups) != 1 || !strings.Contains(dups[0], "#2") || !strings.Contains(dups[0], "#0") {
		t.Fatalf("DuplicateHotkeys = %v", dups)
	}
}
