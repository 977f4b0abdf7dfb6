// Package fire is a bundled program demonstrating intra-frame causality:
// each cell reads the rows below it, which still hold the previous tick's
// values during the row-major pass, so heat rises one row per tick.
package fire

import (
	"math/rand"

	"github.com/vovakirdan/playcell/internal/buffer"
	"github.com/vovakirdan/playcell/internal/registry"
	"github.com/vovakirdan/playcell/internal/runner"
)

var (
	ramp    = []rune(" .:*oO#@")
	palette = []string{"", "52", "88", "124", "160", "196", "208", "220"}
)

type state struct {
	rng *rand.Rand
}

func init() {
	registry.Register("fire", "Fire", New)
}

// New creates the program.
func New() runner.Program {
	s := &state{rng: rand.New(rand.NewSource(rand.Int63()))}
	return runner.Program{
		Pre:  s.pre,
		Main: s.mainCell,
	}
}

// pre seeds the bottom row with fresh heat before the per-cell pass.
func (s *state) pre(ctx *runner.Context, _ runner.Cursor, buf *buffer.Buffer, _ any) {
	y := ctx.Rows - 1
	for x := 0; x < ctx.Cols; x++ {
		h := s.rng.Intn(len(ramp))
		buf.Set(buffer.Cell{Char: ramp[h], Color: palette[h]}, x, y)
	}
}

func (s *state) mainCell(c runner.Coord, ctx *runner.Context, _ runner.Cursor, buf *buffer.Buffer, _ any) buffer.Cell {
	if c.Y == ctx.Rows-1 {
		// Keep the seed row from pre untouched.
		return buffer.Cell{}
	}

	// The row below has not been visited yet this tick, so these reads see
	// the previous frame.
	h := heat(buf.Get(c.X-1, c.Y+1)) +
		heat(buf.Get(c.X, c.Y+1)) +
		heat(buf.Get(c.X+1, c.Y+1))
	h = h/3 - s.rng.Intn(2)
	if h < 0 {
		h = 0
	}
	return buffer.Cell{Char: ramp[h], Color: palette[h]}
}

// heat decodes a cell's heat level from its ramp character.
func heat(c buffer.Cell) int {
	for i, r := range ramp {
		if c.Char == r {
			return i
		}
	}
	return 0
}
