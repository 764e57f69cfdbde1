package colorphrase

import (
	"unicode/utf8"

	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// Separator is the pair of runes that mark a bracketed run. A one-rune
// separator uses the same rune on both sides.
type Separator struct {
	Left  rune
	Right rune
}

// DefaultSeparator is used when no separator is configured.
var DefaultSeparator = Separator{Left: '{', Right: '}'}

// ParseSeparator builds a Separator from a one or two rune spec such as
// "{}", "<>" or "|".
func ParseSeparator(spec string) (Separator, error) {
	n := utf8.RuneCountInString(spec)
	if n == 0 {
		return Separator{}, errors.New(errors.ErrInvalidArgument, "separator must not be empty").
			WithDetail(errors.DetailSeparator, spec)
	}
	if n > 2 {
		return Separator{}, errors.Newf(errors.ErrInvalidArgument, "separator must be at most 2 characters, got %d", n).
			WithDetail(errors.DetailSeparator, spec)
	}

	left, size := utf8.DecodeRuneInString(spec)
	if n == 1 {
		return Separator{Left: left, Right: left}, nil
	}
	right, _ := utf8.DecodeRuneInString(spec[size:])
	return Separator{Left: left, Right: right}, nil
}

// Symmetric reports whether both sides use the same rune.
func (s Separator) Symmetric() bool {
	return s.Left == s.Right
}

// String returns the spec the separator was parsed from.
func (s Separator) String() string {
	if s.Symmetric() {
		return string(s.Left)
	}
	return string([]rune{s.Left, s.Right})
}
