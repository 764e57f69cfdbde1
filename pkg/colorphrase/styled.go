package colorphrase

import (
	"slices"
	"sort"
	"unicode/utf8"
)

// RangeKind tells whether a range colors bracketed or surrounding text.
type RangeKind int

const (
	RangeOuter RangeKind = iota
	RangeInner
)

func (k RangeKind) String() string {
	if k == RangeInner {
		return "inner"
	}
	return "outer"
}

// MarshalText implements encoding.TextMarshaler.
func (k RangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Range colors the runes [Start, End) of a StyledText.
type Range struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Color Color     `json:"color"`
	Kind  RangeKind `json:"kind"`
}

// Len returns the number of runes the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// Mark is a named style annotation over the runes [Start, End), such as
// "bold" or "underline". Marks supplied with a pattern are carried through
// the rewrite so they keep covering the same characters.
type Mark struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Name  string `json:"name"`
}

// StyledText is the immutable result of formatting a pattern: the rewritten
// text, ordered non-overlapping color ranges and the surviving marks.
// All offsets count runes.
type StyledText struct {
	Text   string  `json:"text"`
	Ranges []Range `json:"ranges"`
	Marks  []Mark  `json:"marks,omitempty"`
}

// Len returns the rune length of the text.
func (t StyledText) Len() int {
	return utf8.RuneCountInString(t.Text)
}

// Plain returns the text without any styling.
func (t StyledText) Plain() string {
	return t.Text
}

// Equal reports whether both values carry the same text, ranges and marks.
func (t StyledText) Equal(other StyledText) bool {
	return t.Text == other.Text &&
		slices.Equal(t.Ranges, other.Ranges) &&
		slices.Equal(t.Marks, other.Marks)
}

// Clone returns a copy that shares no slices with t.
func (t StyledText) Clone() StyledText {
	return StyledText{
		Text:   t.Text,
		Ranges: slices.Clone(t.Ranges),
		Marks:  slices.Clone(t.Marks),
	}
}

// Run is a stretch of text with uniform styling.
type Run struct {
	Text  string
	Start int
	End   int

	// Colored is false for text no range covers.
	Colored bool
	Color   Color
	Kind    RangeKind

	Marks []string
}

// Runs splits the text at every range and mark boundary. The runs are in
// order and cover every rune, unstyled stretches included.
func (t StyledText) Runs() []Run {
	runes := []rune(t.Text)
	if len(runes) == 0 {
		return nil
	}

	cuts := []int{0, len(runes)}
	for _, r := range t.Ranges {
		cuts = append(cuts, r.Start, r.End)
	}
	for _, m := range t.Marks {
		cuts = append(cuts, m.Start, m.End)
	}
	sort.Ints(cuts)
	cuts = slices.Compact(cuts)

	var runs []Run
	for i := 0; i+1 < len(cuts); i++ {
		start, end := cuts[i], cuts[i+1]
		if start < 0 || end > len(runes) || start >= end {
			continue
		}
		run := Run{Text: string(runes[start:end]), Start: start, End: end}
		if rg, ok := t.rangeAt(start); ok {
			run.Colored = true
			run.Color = rg.Color
			run.Kind = rg.Kind
		}
		for _, m := range t.Marks {
			if m.Start <= start && end <= m.End {
				run.Marks = append(run.Marks, m.Name)
			}
		}
		runs = append(runs, run)
	}
	return runs
}

// rangeAt finds the range covering offset. Ranges are sorted and disjoint.
func (t StyledText) rangeAt(offset int) (Range, bool) {
	i := sort.Search(len(t.Ranges), func(i int) bool { return t.Ranges[i].End > offset })
	if i < len(t.Ranges) && t.Ranges[i].Start <= offset {
		return t.Ranges[i], true
	}
	return Range{}, false
}
