package buffer

import "strings"

// Text is a multi-line string plus style fields applied to every character.
type Text struct {
	Text       string
	Color      string
	Background string
	Weight     string
}

// TextOffset is the grid position of the last character written by MergeText.
type TextOffset struct {
	Col int
	Row int
}

// LineBounds holds the first and last cell of one merged line, read back
// after the merge so callers can style line boundaries.
type LineBounds struct {
	First Cell
	Last  Cell
}

// MergeText splits t.Text on line breaks and merges one character per column
// starting at (x, y), advancing one row per line. The style fields of t are
// merged onto every character. Lines are not wrapped or truncated: the
// per-cell bounds check in Merge is the only clipping mechanism.
//
// It returns the offset of the last character written and, per line, the
// first and last cell values after the merge.
func (b *Buffer) MergeText(t Text, x, y int) (TextOffset, []LineBounds) {
	lines := strings.Split(t.Text, "\n")
	bounds := make([]LineBounds, 0, len(lines))
	off := TextOffset{Col: x - 1, Row: y}

	for li, line := range lines {
		row := y + li
		runes := []rune(line)
		for i, r := range runes {
			b.Merge(Cell{
				Char:       r,
				Color:      t.Color,
				Background: t.Background,
				Weight:     t.Weight,
			}, x+i, row)
		}
		last := x - 1
		if len(runes) > 0 {
			last = x + len(runes) - 1
		}
		off = TextOffset{Col: last, Row: row}
		bounds = append(bounds, LineBounds{
			First: b.Get(x, row),
			Last:  b.Get(last, row),
		})
	}
	return off, bounds
}

// MergeString merges a bare string with no style fields. See MergeText.
func (b *Buffer) MergeString(s string, x, y int) (TextOffset, []LineBounds) {
	return b.MergeText(Text{Text: s}, x, y)
}
