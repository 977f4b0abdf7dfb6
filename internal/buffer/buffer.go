// Package buffer provides the styled 2D cell grid that programs draw into.
// It decouples program output from the terminal, allowing programs to write
// cells while the platform handles actual display. It contains no external
// dependencies to keep program logic pure and testable.
package buffer

// Cell is the display state of one grid unit: a character plus style fields.
// Zero-valued fields count as "unset" when a cell is used as a merge patch:
// a bare glyph is Cell{Char: c}, a style-only patch leaves Char zero.
type Cell struct {
	Char       rune
	Color      string
	Background string
	Weight     string
}

// Merge returns c with every non-zero field of patch overriding c's field.
// Fields absent from the patch are preserved.
func (c Cell) Merge(patch Cell) Cell {
	if patch.Char != 0 {
		c.Char = patch.Char
	}
	if patch.Color != "" {
		c.Color = patch.Color
	}
	if patch.Background != "" {
		c.Background = patch.Background
	}
	if patch.Weight != "" {
		c.Weight = patch.Weight
	}
	return c
}

// Buffer is a flat grid of cols*rows cells addressed by index = x + y*cols.
type Buffer struct {
	cols  int
	rows  int
	base  Cell
	cells []Cell
}

// New creates a buffer with the given dimensions. Every cell starts as the
// base style with a space character.
func New(cols, rows int, base Cell) *Buffer {
	if base.Char == 0 {
		base.Char = ' '
	}
	b := &Buffer{cols: cols, rows: rows, base: base}
	b.allocate()
	return b
}

// allocate creates fresh cell storage, discarding any previous contents.
func (b *Buffer) allocate() {
	b.cells = make([]Cell, b.cols*b.rows)
	for i := range b.cells {
		b.cells[i] = b.base
	}
}

// Cols returns the grid width in cells.
func (b *Buffer) Cols() int {
	return b.cols
}

// Rows returns the grid height in cells.
func (b *Buffer) Rows() int {
	return b.rows
}

// Len returns the number of cells, always cols*rows.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Resize reallocates the grid to the new dimensions. Previous contents are
// discarded: every cell is reset to the base style with a space character.
func (b *Buffer) Resize(cols, rows int) {
	if cols == b.cols && rows == b.rows {
		return
	}
	b.cols = cols
	b.rows = rows
	b.allocate()
}

// Clear resets every cell to the base style with a space character.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = b.base
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Get returns the cell at (x, y), or a zero cell for out-of-bounds reads.
// It never panics.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[x+y*b.cols]
}

// Set overwrites the slot at (x, y) entirely with c.
// Out-of-bounds coordinates are silently ignored.
func (b *Buffer) Set(c Cell, x, y int) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[x+y*b.cols] = c
}

// Merge shallow-merges the non-zero fields of c onto the slot at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *Buffer) Merge(c Cell, x, y int) {
	if !b.inBounds(x, y) {
		return
	}
	i := x + y*b.cols
	b.cells[i] = b.cells[i].Merge(c)
}

// SetRect applies Set to every cell of the w×h rectangle at (x, y).
// Cells falling outside the grid are skipped individually.
func (b *Buffer) SetRect(c Cell, x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			b.Set(c, i, j)
		}
	}
}

// MergeRect applies Merge to every cell of the w×h rectangle at (x, y).
// Cells falling outside the grid are skipped individually.
func (b *Buffer) MergeRect(c Cell, x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			b.Merge(c, i, j)
		}
	}
}
