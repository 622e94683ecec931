package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA colour with 8-bit channels. The zero value is transparent
// black; colours from the configuration are always built by ParseColor or
// FromRGBA.
type Color struct {
	R, G, B, A uint8
}

// FromRGBA builds a colour from explicit channels. A nil alpha means fully
// opaque.
func FromRGBA(red, green, blue uint8, alpha *uint8) Color {
	a := uint8(255)
	if alpha != nil {
		a = *alpha
	}
	return Color{R: red, G: green, B: blue, A: a}
}

// ColorReason classifies why a hex colour string was rejected.
type ColorReason int

const (
	MissingHex ColorReason = iota
	NonASCIICharacters
	InvalidColorLength
	InvalidHexadecimal
)

func (r ColorReason) String() string {
	switch r {
	case MissingHex:
		return "missing '#' character at the start"
	case NonASCIICharacters:
		return "color string contains non-ascii character"
	case InvalidColorLength:
		return "hexadecimal string is invalid length. It can either be 3 or 6 characters long"
	case InvalidHexadecimal:
		return "invalid hexadecimal digit"
	default:
		return "unknown"
	}
}

// ColorError is returned when a colour string cannot be parsed.
type ColorError struct {
	Value  string
	Reason ColorReason
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color '%s': %s", e.Value, e.Reason)
}

// ParseColor parses "#rgb" or "#rrggbb" (case-insensitive). Surrounding
// whitespace is ignored and the result is always opaque.
func ParseColor(value string) (Color, error) {
	s := strings.TrimSpace(value)

	s, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, &ColorError{Value: value, Reason: MissingHex}
	}

	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return Color{}, &ColorError{Value: value, Reason: NonASCIICharacters}
		}
	}

	if len(s) != 3 && len(s) != 6 {
		return Color{}, &ColorError{Value: value, Reason: InvalidColorLength}
	}

	nibbles := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		n, ok := hexNibble(s[i])
		if !ok {
			return Color{}, &ColorError{Value: value, Reason: InvalidHexadecimal}
		}
		nibbles[i] = n
	}

	if len(nibbles) == 3 {
		return Color{
			R: nibbles[0] | nibbles[0]<<4,
			G: nibbles[1] | nibbles[1]<<4,
			B: nibbles[2] | nibbles[2]<<4,
			A: 255,
		}, nil
	}

	return Color{
		R: nibbles[0]<<4 | nibbles[1],
		G: nibbles[2]<<4 | nibbles[3],
		B: nibbles[4]<<4 | nibbles[5],
		A: 255,
	}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS renders the colour as "rgba(r,g,b,a)" with alpha normalised to [0, 1].
// This is the form substituted into SVG icons.
func (c Color) CSS() string {
	alpha := strconv.FormatFloat(float64(c.A)/255, 'g', -1, 32)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, alpha)
}

func (c Color) String() string {
	return c.CSS()
}

// Terminal returns a lipgloss colour for c. Terminals have no alpha channel,
// so translucent colours are blended over bg first.
func (c Color) Terminal(bg Color) lipgloss.Color {
	if c.A == 255 {
		return lipgloss.Color(c.Hex())
	}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	back := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	return lipgloss.Color(back.BlendRgb(fg, float64(c.A)/255).Clamped().Hex())
}

// DecodeColor converts a decoded TOML value, either a hex string or an inline
// table {red, green, blue, alpha?}. Bad hex strings fail with *ColorError.
func DecodeColor(data any) (Color, error) {
	switch v := data.(type) {
	case string:
		return ParseColor(v)
	case map[string]any:
		return decodeTable(v)
	default:
		return Color{}, fmt.Errorf("color must be a hex string or a {red, green, blue, alpha} table, got %T", data)
	}
}

func decodeTable(table map[string]any) (Color, error) {
	var channels [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		raw, ok := table[name]
		if !ok {
			return Color{}, fmt.Errorf("color table is missing %q", name)
		}
		v, err := channel(name, raw)
		if err != nil {
			return Color{}, err
		}
		channels[i] = v
	}

	var alpha *uint8
	if raw, ok := table["alpha"]; ok {
		v, err := channel("alpha", raw)
		if err != nil {
			return Color{}, err
		}
		alpha = &v
	}

	return FromRGBA(channels[0], channels[1], channels[2], alpha), nil
}

func channel(name string, raw any) (uint8, error) {
	n, ok := raw.(int64)
	if !ok {
		return 0, fmt.Errorf("color channel %q must be an integer, got %T", name, raw)
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("color channel %q out of range 0..255: %d", name, n)
	}
	return uint8(n), nil
}
