package colorphrase

import (
	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// Tokenize splits pattern into its ordered segments. The segments cover the
// whole pattern with no gaps or overlaps. Callers must run Validate first:
// Tokenize only guards against the failures it can see locally.
func Tokenize(pattern string, sep Separator) ([]Segment, error) {
	lx := &lexer{runes: []rune(pattern), sep: sep}

	var segments []Segment
	for !lx.eof() {
		seg, err := lx.next()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// lexer is a single-pass cursor over the pattern with one rune of lookahead.
type lexer struct {
	runes []rune
	pos   int
	sep   Separator
}

func (lx *lexer) eof() bool {
	return lx.pos >= len(lx.runes)
}

func (lx *lexer) current() rune {
	return lx.runes[lx.pos]
}

// lookahead returns the rune after the cursor and false at end of input.
func (lx *lexer) lookahead() (rune, bool) {
	if lx.pos+1 >= len(lx.runes) {
		return 0, false
	}
	return lx.runes[lx.pos+1], true
}

func (lx *lexer) next() (Segment, error) {
	if lx.current() == lx.sep.Left {
		if r, ok := lx.lookahead(); ok && r == lx.sep.Left {
			return lx.literal(), nil
		}
		return lx.bracketed()
	}
	return lx.plain(), nil
}

// literal consumes a doubled left delimiter.
func (lx *lexer) literal() Segment {
	seg := literalSegment(lx.pos, lx.sep.Left)
	lx.pos += 2
	return seg
}

// bracketed consumes a left delimiter, the inner text and the right delimiter.
func (lx *lexer) bracketed() (Segment, error) {
	start := lx.pos
	lx.pos++

	innerStart := lx.pos
	for !lx.eof() && lx.current() != lx.sep.Right {
		lx.pos++
	}
	if lx.eof() {
		return Segment{}, errors.New(errors.ErrUnterminatedBracket, "missing closing separator").AtOffset(start)
	}

	inner := lx.runes[innerStart:lx.pos]
	lx.pos++

	if len(inner) == 0 {
		return Segment{}, errors.Newf(errors.ErrEmptyBracketedContent,
			"empty content between separators, for example %s", lx.sep).AtOffset(start)
	}
	return bracketedSegment(start, inner), nil
}

// plain consumes a maximal run up to the next left delimiter.
func (lx *lexer) plain() Segment {
	start := lx.pos
	for !lx.eof() && lx.current() != lx.sep.Left {
		lx.pos++
	}
	return plainSegment(start, lx.runes[start:lx.pos])
}
