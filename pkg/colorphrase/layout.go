package colorphrase

import (
	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// Config is the complete formatting configuration of a phrase.
type Config struct {
	Separator Separator
	Inner     Color
	Outer     Color
}

// DefaultConfig returns the "{}" separator with the default colors.
func DefaultConfig() Config {
	return Config{
		Separator: DefaultSeparator,
		Inner:     DefaultInnerColor,
		Outer:     DefaultOuterColor,
	}
}

// Layout applies segments to pattern and returns the styled result.
//
// Segments are processed strictly in order with a running output cursor:
// each rewrite shrinks the buffer, so a segment's output offset is only
// known once every segment before it has been applied. Plain runs are never
// rewritten, only colored; marks on them survive unchanged.
func Layout(pattern string, segments []Segment, cfg Config, marks ...Mark) (StyledText, error) {
	source := []rune(pattern)
	if err := checkCoverage(source, segments, cfg.Separator); err != nil {
		return StyledText{}, err
	}

	buf := newSpanBuffer(source, marks)
	var ranges []Range
	cursor := 0

	for _, seg := range segments {
		switch seg.Kind {
		case KindPlain:
			ranges = appendOuter(ranges, cursor, cursor+seg.OutputLen, cfg.Outer)
		case KindLiteral:
			// "{{" becomes "{" colored like plain text; it gets an outer range
			// of its own when no plain text touches it
			buf.deleteAt(cursor + 1)
			ranges = appendOuter(ranges, cursor, cursor+1, cfg.Outer)
		case KindBracketed:
			// closing delimiter first so cursor still points at the opening one
			buf.deleteAt(cursor + seg.OutputLen + 1)
			buf.deleteAt(cursor)
			ranges = append(ranges, Range{
				Start: cursor,
				End:   cursor + seg.OutputLen,
				Color: cfg.Inner,
				Kind:  RangeInner,
			})
		}
		cursor += seg.OutputLen
	}

	if cursor != buf.len() {
		return StyledText{}, errors.Newf(errors.ErrInternal,
			"layout ended at offset %d but text has %d characters", cursor, buf.len())
	}

	text, survivors := buf.finish()
	return StyledText{Text: text, Ranges: ranges, Marks: survivors}, nil
}

// appendOuter adds an outer range, extending the previous one when they touch.
func appendOuter(ranges []Range, start, end int, color Color) []Range {
	if n := len(ranges); n > 0 {
		last := &ranges[n-1]
		if last.Kind == RangeOuter && last.End == start && last.Color == color {
			last.End = end
			return ranges
		}
	}
	return append(ranges, Range{Start: start, End: end, Color: color, Kind: RangeOuter})
}

// checkCoverage verifies segments tile the source without gaps and that
// each one is consistent with its kind, including the delimiters it removes.
func checkCoverage(source []rune, segments []Segment, sep Separator) error {
	offset := 0
	for i, seg := range segments {
		if seg.Start != offset {
			return errors.Newf(errors.ErrInternal, "segment %d starts at %d, expected %d", i, seg.Start, offset)
		}
		want := seg.OutputLen
		switch seg.Kind {
		case KindLiteral:
			want = 2
		case KindBracketed:
			want = seg.OutputLen + 2
		}
		if seg.SourceLen != want || seg.OutputLen <= 0 || (seg.Kind == KindLiteral && seg.OutputLen != 1) {
			return errors.Newf(errors.ErrInternal, "segment %d (%s) has inconsistent lengths", i, seg.Kind)
		}
		if seg.End() > len(source) {
			return errors.Newf(errors.ErrInternal, "segment %d ends at %d past the text", i, seg.End())
		}
		if !onDelimiters(source, seg, sep) {
			return errors.Newf(errors.ErrInternal, "segment %d (%s) does not sit on %q delimiters", i, seg.Kind, sep.String())
		}
		offset += seg.SourceLen
	}
	if offset != len(source) {
		return errors.Newf(errors.ErrInternal, "segments cover %d characters of %d", offset, len(source))
	}
	return nil
}

func onDelimiters(source []rune, seg Segment, sep Separator) bool {
	switch seg.Kind {
	case KindLiteral:
		return source[seg.Start] == sep.Left && source[seg.Start+1] == sep.Left
	case KindBracketed:
		return source[seg.Start] == sep.Left && source[seg.End()-1] == sep.Right
	}
	return true
}
