package colorphrase

import (
	"slices"
	"sort"
)

// spanBuffer is a mutable copy of the pattern that keeps its marks attached
// to the same characters while runes are deleted.
type spanBuffer struct {
	text  []rune
	marks []Mark
}

func newSpanBuffer(text []rune, marks []Mark) *spanBuffer {
	return &spanBuffer{
		text:  slices.Clone(text),
		marks: slices.Clone(marks),
	}
}

// deleteAt removes the rune at offset i. Mark boundaries after i move back
// by one, so a mark covering the removed rune shrinks.
func (b *spanBuffer) deleteAt(i int) {
	b.text = slices.Delete(b.text, i, i+1)
	for j := range b.marks {
		if b.marks[j].Start > i {
			b.marks[j].Start--
		}
		if b.marks[j].End > i {
			b.marks[j].End--
		}
	}
}

func (b *spanBuffer) len() int {
	return len(b.text)
}

// finish returns the text and the marks that still cover at least one rune,
// ordered by start.
func (b *spanBuffer) finish() (string, []Mark) {
	var marks []Mark
	for _, m := range b.marks {
		if m.End > m.Start {
			marks = append(marks, m)
		}
	}
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].Start < marks[j].Start })
	return string(b.text), marks
}
