package config

import (
	"fmt"
	"unicode/utf8"

	"spree/pkg/nav"
)

// MaxButtons is the largest number of buttons a configuration may declare.
const MaxButtons = 10

// Button indices are carried as uint16; this fails to compile if MaxButtons
// outgrows that.
const _ = uint16(MaxButtons)

// ValidationKind classifies a ValidationError.
type ValidationKind int

const (
	NoButtons ValidationKind = iota
	TooManyButtons
	NegativeDimension
	EmptyCommand
	InvalidKey
	ReservedKey
	VimConflict
)

// ValidationError describes a configuration that parsed but cannot be used.
type ValidationError struct {
	Kind  ValidationKind
	Index int     // button index, for per-button errors
	Key   string  // offending key string
	Field string  // offending layout field
	Value float32 // offending layout value
	Count int     // button count, for TooManyButtons
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NoButtons:
		return "no buttons given"
	case TooManyButtons:
		return fmt.Sprintf("too many buttons (current = %d, max = %d)", e.Count, MaxButtons)
	case NegativeDimension:
		return fmt.Sprintf("'%s' must not be negative (got %g)", e.Field, e.Value)
	case EmptyCommand:
		return fmt.Sprintf("button #%d has an empty command", e.Index)
	case InvalidKey:
		return fmt.Sprintf("invalid button key %q on button #%d: a key must be exactly one character", e.Key, e.Index)
	case ReservedKey:
		return fmt.Sprintf("invalid button key %q on button #%d: reserved for navigation", e.Key, e.Index)
	case VimConflict:
		return fmt.Sprintf("key conflict with VIM-style navigation bindings: button #%d uses %q", e.Index, e.Key)
	default:
		return "invalid configuration"
	}
}

// Validate checks cfg and derives each button's hotkey. The result is aligned
// with cfg.Buttons. Reserved keys come from the front end's key scheme.
func Validate(cfg *Config, scheme nav.KeyScheme) ([]nav.Hotkey, error) {
	n := len(cfg.Buttons)
	if n > MaxButtons {
		return nil, &ValidationError{Kind: TooManyButtons, Count: n}
	}
	if n == 0 {
		return nil, &ValidationError{Kind: NoButtons}
	}

	dims := []struct {
		name  string
		value float32
	}{
		{"border_width", cfg.BorderWidth},
		{"padding", cfg.Padding},
		{"spacing", cfg.Spacing},
		{"button_dim", cfg.ButtonDim},
	}
	for _, d := range dims {
		if d.value < 0 {
			return nil, &ValidationError{Kind: NegativeDimension, Field: d.name, Value: d.value}
		}
	}

	hotkeys := make([]nav.Hotkey, n)
	for i, btn := range cfg.Buttons {
		if len(btn.Command) == 0 {
			return nil, &ValidationError{Kind: EmptyCommand, Index: i}
		}

		hk := nav.Hotkey{Index: uint16(i)}
		if btn.Key != nil {
			r, err := hotkey(i, *btn.Key, cfg.EnableVimNavigation, scheme)
			if err != nil {
				return nil, err
			}
			hk.Key = r
			hk.HasKey = true
		}
		hotkeys[i] = hk
	}

	return hotkeys, nil
}

func hotkey(index int, key string, vim bool, scheme nav.KeyScheme) (rune, error) {
	r, size := utf8.DecodeRuneInString(key)
	if key == "" || size != len(key) {
		return 0, &ValidationError{Kind: InvalidKey, Index: index, Key: key}
	}

	if scheme.IsReserved(r) {
		return 0, &ValidationError{Kind: ReservedKey, Index: index, Key: key}
	}

	if vim && (r == 'h' || r == 'l') {
		return 0, &ValidationError{Kind: VimConflict, Index: index, Key: key}
	}

	return r, nil
}

// DuplicateHotkeys lists hotkeys bound to more than one button. Only the
// first button in configuration order is reachable through such a key.
func DuplicateHotkeys(hotkeys []nav.Hotkey) []string {
	first := make(map[rune]uint16)
	var dups []string
	for _, hk := range hotkeys {
		if !hk.HasKey {
			continue
		}
		if owner, ok := first[hk.Key]; ok {
			dups = append(dups, fmt.Sprintf("key %q on button #%d is shadowed by button #%d", hk.Key, hk.Index, owner))
			continue
		}
		first[hk.Key] = hk.Index
	}
	return dups
}
