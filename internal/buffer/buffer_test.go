package buffer

import "testing"

func TestNewBuffer(t *testing.T) {
	b := New(80, 24, Cell{})

	if b.Cols() != 80 {
		t.Errorf("Cols() = %d, expected 80", b.Cols())
	}
	if b.Rows() != 24 {
		t.Errorf("Rows() = %d, expected 24", b.Rows())
	}
	if b.Len() != 80*24 {
		t.Errorf("Len() = %d, expected %d", b.Len(), 80*24)
	}

	// Check that it's initialized with spaces
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			if b.Get(x, y).Char != ' ' {
				t.Errorf("New buffer should be filled with spaces, got %q at (%d, %d)", b.Get(x, y).Char, x, y)
			}
		}
	}
}

func TestNewBufferBaseStyle(t *testing.T) {
	b := New(3, 2, Cell{Color: "15", Background: "0"})

	c := b.Get(2, 1)
	if c.Char != ' ' {
		t.Errorf("base cell char = %q, expected space", c.Char)
	}
	if c.Color != "15" || c.Background != "0" {
		t.Errorf("base cell style = %q/%q, expected 15/0", c.Color, c.Background)
	}
}

func TestBufferSetGet(t *testing.T) {
	b := New(10, 10, Cell{})

	b.Set(Cell{Char: 'X'}, 5, 5)
	if b.Get(5, 5).Char != 'X' {
		t.Errorf("Get(5, 5).Char = %q, expected 'X'", b.Get(5, 5).Char)
	}

	// Out of bounds should be silent
	b.Set(Cell{Char: 'A'}, -1, 0)  // Should not panic
	b.Set(Cell{Char: 'A'}, 100, 0) // Should not panic
	b.Set(Cell{Char: 'A'}, 0, -1)  // Should not panic
	b.Set(Cell{Char: 'A'}, 0, 100) // Should not panic

	// Out of bounds get should return a zero cell and never panic
	if (b.Get(-1, 0) != Cell{}) {
		t.Error("Out of bounds Get should return a zero cell")
	}
	if (b.Get(100, 0) != Cell{}) {
		t.Error("Out of bounds Get should return a zero cell")
	}
}

func TestSetReplacesSlotEntirely(t *testing.T) {
	b := New(4, 1, Cell{})

	b.Set(Cell{Char: 'X', Color: "1", Weight: "bold"}, 0, 0)
	b.Set(Cell{Char: 'Y'}, 0, 0)

	got := b.Get(0, 0)
	if got.Char != 'Y' || got.Color != "" || got.Weight != "" {
		t.Errorf("Set should fully replace the slot, got %+v", got)
	}
}

func TestMergePreservesAbsentFields(t *testing.T) {
	b := New(4, 1, Cell{})

	b.Set(Cell{Char: 'X', Color: "1"}, 1, 0)
	b.Merge(Cell{Background: "2"}, 1, 0)

	got := b.Get(1, 0)
	if got.Char != 'X' {
		t.Errorf("Merge changed char to %q, expected 'X'", got.Char)
	}
	if got.Color != "1" || got.Background != "2" {
		t.Errorf("Merge result style = %q/%q, expected 1/2", got.Color, got.Background)
	}

	// Merge overwrites only the fields present in the patch
	b.Merge(Cell{Char: 'Z', Color: "3"}, 1, 0)
	got = b.Get(1, 0)
	if got.Char != 'Z' || got.Color != "3" || got.Background != "2" {
		t.Errorf("Merge overwrite result = %+v", got)
	}

	// Out of bounds merge is a silent no-op
	b.Merge(Cell{Char: 'A'}, -1, 0)
	b.Merge(Cell{Char: 'A'}, 4, 0)
}

func TestResizeDiscardsContents(t *testing.T) {
	b := New(4, 4, Cell{Color: "7"})
	b.Set(Cell{Char: '#'}, 0, 0)

	b.Resize(3, 2)

	if b.Len() != 6 {
		t.Errorf("Len() after resize = %d, expected 6", b.Len())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := b.Get(x, y)
			if c.Char != ' ' || c.Color != "7" {
				t.Errorf("resize should reset cell (%d, %d) to base, got %+v", x, y, c)
			}
		}
	}

	// Same size is a no-op that keeps contents
	b.Set(Cell{Char: '#'}, 1, 1)
	b.Resize(3, 2)
	if b.Get(1, 1).Char != '#' {
		t.Error("Resize to the same dimensions should keep contents")
	}
}

func TestSetRectClipsPerCell(t *testing.T) {
	b := New(4, 4, Cell{})

	// Partially out of bounds: only the in-bounds cells are written
	b.SetRect(Cell{Char: '#'}, 2, 2, 4, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := ' '
			if x >= 2 && y >= 2 {
				want = '#'
			}
			if b.Get(x, y).Char != want {
				t.Errorf("cell (%d, %d) = %q, expected %q", x, y, b.Get(x, y).Char, want)
			}
		}
	}
}

func TestMergeRect(t *testing.T) {
	b := New(3, 3, Cell{})
	b.Set(Cell{Char: 'X', Color: "1"}, 1, 1)

	b.MergeRect(Cell{Background: "4"}, 0, 0, 3, 3)

	got := b.Get(1, 1)
	if got.Char != 'X' || got.Color != "1" || got.Background != "4" {
		t.Errorf("MergeRect should keep existing fields, got %+v", got)
	}
	if b.Get(0, 0).Background != "4" {
		t.Error("MergeRect should style every cell in the rectangle")
	}
}

func TestMergeText(t *testing.T) {
	b := New(2, 2, Cell{})

	off, lines := b.MergeString("ab\ncd", 0, 0)

	if b.Get(0, 0).Char != 'a' || b.Get(1, 0).Char != 'b' {
		t.Errorf("row 0 = %q%q, expected \"ab\"", b.Get(0, 0).Char, b.Get(1, 0).Char)
	}
	if b.Get(0, 1).Char != 'c' || b.Get(1, 1).Char != 'd' {
		t.Errorf("row 1 = %q%q, expected \"cd\"", b.Get(0, 1).Char, b.Get(1, 1).Char)
	}
	if off.Col != 1 || off.Row != 1 {
		t.Errorf("offset = {%d, %d}, expected {1, 1}", off.Col, off.Row)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d line bounds, expected 2", len(lines))
	}
	if lines[0].First.Char != 'a' || lines[0].Last.Char != 'b' {
		t.Errorf("line 0 bounds = %q/%q, expected a/b", lines[0].First.Char, lines[0].Last.Char)
	}
	if lines[1].First.Char != 'c' || lines[1].Last.Char != 'd' {
		t.Errorf("line 1 bounds = %q/%q, expected c/d", lines[1].First.Char, lines[1].Last.Char)
	}
}

func TestMergeTextStylesEveryCharacter(t *testing.T) {
	b := New(5, 1, Cell{})

	b.MergeText(Text{Text: "hi", Color: "3", Weight: "bold"}, 1, 0)

	for x := 1; x <= 2; x++ {
		c := b.Get(x, 0)
		if c.Color != "3" || c.Weight != "bold" {
			t.Errorf("cell (%d, 0) style = %+v, expected color 3 bold", x, c)
		}
	}
	if b.Get(0, 0).Char != ' ' {
		t.Error("MergeText should not touch cells before the start column")
	}
}

func TestMergeTextNotClipped(t *testing.T) {
	b := New(3, 1, Cell{})

	// Lines run past the right edge; only in-bounds cells are written,
	// but the returned offset still reflects the full text.
	off, _ := b.MergeString("abcdef", 0, 0)

	if b.Get(2, 0).Char != 'c' {
		t.Errorf("cell (2, 0) = %q, expected 'c'", b.Get(2, 0).Char)
	}
	if off.Col != 5 || off.Row != 0 {
		t.Errorf("offset = {%d, %d}, expected {5, 0}", off.Col, off.Row)
	}
}

func TestCellMergeZeroPatch(t *testing.T) {
	c := Cell{Char: 'X', Color: "1"}
	if got := c.Merge(Cell{}); got != c {
		t.Errorf("merging a zero patch changed the cell: %+v", got)
	}
}
