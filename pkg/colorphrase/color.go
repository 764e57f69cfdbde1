package colorphrase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 32-bit ARGB value, alpha in the high byte.
type Color uint32

const (
	// DefaultOuterColor colors text outside the delimiters (mid-gray).
	DefaultOuterColor Color = 0xFF666666
	// DefaultInnerColor colors text between the delimiters (accent red).
	DefaultInnerColor Color = 0xFFE6454A
)

// ARGB assembles a Color from its channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Hex returns the opaque "#rrggbb" form used by terminal renderers.
// Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}.Hex()
}

// String returns the "0xAARRGGBB" form.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts "#rgb" and "#rrggbb" (opaque), "#aarrggbb",
// "0xAARRGGBB" and plain decimal ARGB values.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		digits := s[1:]
		if len(digits) == 8 {
			return parseUint(s, digits, 16)
		}
		if len(digits) != 3 && len(digits) != 6 {
			return 0, invalidColor(s)
		}
		parsed, err := colorful.Hex(s)
		if err != nil {
			return 0, invalidColor(s)
		}
		r, g, b := parsed.RGB255()
		return ARGB(0xFF, r, g, b), nil
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return parseUint(s, s[2:], 16)
	default:
		return parseUint(s, s, 10)
	}
}

func parseUint(original, digits string, base int) (Color, error) {
	if digits == "" {
		return 0, invalidColor(original)
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, invalidColor(original)
	}
	return Color(v), nil
}

func invalidColor(s string) error {
	return errors.Newf(errors.ErrInvalidArgument, "invalid color %q", s)
}
