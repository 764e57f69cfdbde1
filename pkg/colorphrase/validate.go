package colorphrase

import (
	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// Validate checks that the delimiters in pattern balance. It runs before
// any segment is produced; Tokenize assumes it has already succeeded.
//
// With distinct left and right delimiters every left rune is pushed and
// every right rune pops, regardless of escaping. With a symmetric separator
// the same rune opens and closes, so pairs are resolved greedily from the
// left: outside a bracket a doubled delimiter is an escape, any other
// delimiter opens, and inside a bracket the next delimiter closes.
func Validate(pattern string, sep Separator) error {
	runes := []rune(pattern)
	if sep.Symmetric() {
		return validateSymmetric(runes, sep.Left)
	}
	return validateStack(runes, sep)
}

func validateStack(runes []rune, sep Separator) error {
	// offsets of pending left delimiters
	var stack []int
	for i, r := range runes {
		switch r {
		case sep.Left:
			stack = append(stack, i)
		case sep.Right:
			if len(stack) == 0 {
				return malformed("closing separator without opening one", i)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return malformed("the separators don't match in the pattern", stack[len(stack)-1])
	}
	return nil
}

func validateSymmetric(runes []rune, delim rune) error {
	open := -1
	for i := 0; i < len(runes); i++ {
		if runes[i] != delim {
			continue
		}
		switch {
		case open >= 0:
			open = -1
		case i+1 < len(runes) && runes[i+1] == delim:
			i++
		default:
			open = i
		}
	}
	if open >= 0 {
		return malformed("the separators don't match in the pattern", open)
	}
	return nil
}

func malformed(msg string, offset int) error {
	return errors.New(errors.ErrMalformedPattern, msg).AtOffset(offset)
}
