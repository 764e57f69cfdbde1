package colorphrase

import "fmt"

// SegmentKind tags the three cases a Segment can take.
type SegmentKind int

const (
	// KindPlain is text outside any delimiter, copied verbatim.
	KindPlain SegmentKind = iota
	// KindLiteral is a doubled left delimiter collapsed to a single rune.
	KindLiteral
	// KindBracketed is the text between a left and a right delimiter.
	KindBracketed
)

func (k SegmentKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindLiteral:
		return "literal"
	case KindBracketed:
		return "bracketed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is one classified unit of a pattern. Offsets and lengths count
// runes in the source pattern.
type Segment struct {
	Kind SegmentKind `json:"kind"`

	// Start is the rune offset of the segment in the source pattern.
	Start int `json:"start"`

	// SourceLen is the number of pattern runes the segment consumes.
	SourceLen int `json:"source_len"`

	// Text is what the segment contributes to the output: the run itself
	// for plain text, the delimiter for a literal, the inner text for a
	// bracketed run.
	Text string `json:"text"`

	// OutputLen is the number of runes the segment occupies after the rewrite.
	OutputLen int `json:"output_len"`
}

// End returns the rune offset just past the segment in the source pattern.
func (s Segment) End() int {
	return s.Start + s.SourceLen
}

func (s Segment) String() string {
	return fmt.Sprintf("%s[%d:%d]%q", s.Kind, s.Start, s.End(), s.Text)
}

func plainSegment(start int, text []rune) Segment {
	return Segment{Kind: KindPlain, Start: start, SourceLen: len(text), Text: string(text), OutputLen: len(text)}
}

func literalSegment(start int, delim rune) Segment {
	return Segment{Kind: KindLiteral, Start: start, SourceLen: 2, Text: string(delim), OutputLen: 1}
}

func bracketedSegment(start int, inner []rune) Segment {
	return Segment{Kind: KindBracketed, Start: start, SourceLen: len(inner) + 2, Text: string(inner), OutputLen: len(inner)}
}
