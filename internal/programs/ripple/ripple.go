// Package ripple is a bundled program demonstrating cursor sampling and
// pointer event handlers: clicks drop expanding rings, the cursor carries a
// highlight.
package ripple

import (
	"math"

	"github.com/vovakirdan/playcell/internal/buffer"
	"github.com/vovakirdan/playcell/internal/registry"
	"github.com/vovakirdan/playcell/internal/runner"
)

const (
	maxDrops  = 8
	waveSpeed = 0.008 // cells per millisecond
)

var ramp = []rune(" ·~≈≋#")

type drop struct {
	x, y float64
	born float64 // ctx.Time at the click
}

type state struct {
	drops []drop
}

func init() {
	registry.Register("ripple", "Ripple", New)
}

// New creates the program. Each instance owns its drop list.
func New() runner.Program {
	s := &state{}
	return runner.Program{
		Main:        s.mainCell,
		PointerDown: s.pointerDown,
	}
}

func (s *state) pointerDown(ctx *runner.Context, cursor runner.Cursor, _ *buffer.Buffer) {
	s.drops = append(s.drops, drop{x: cursor.X, y: cursor.Y, born: ctx.Time})
	if len(s.drops) > maxDrops {
		s.drops = s.drops[len(s.drops)-maxDrops:]
	}
}

func (s *state) mainCell(c runner.Coord, ctx *runner.Context, cursor runner.Cursor, _ *buffer.Buffer, _ any) buffer.Cell {
	aspect := ctx.Metrics.Aspect

	// Cursor highlight.
	if c.X == int(cursor.X) && c.Y == int(cursor.Y) {
		ch := '+'
		if cursor.Pressed {
			ch = '*'
		}
		return buffer.Cell{Char: ch, Weight: "bold"}
	}

	v := 0.0
	for _, d := range s.drops {
		dist := math.Hypot(float64(c.X)-d.x, (float64(c.Y)-d.y)/aspect)
		radius := (ctx.Time - d.born) * waveSpeed
		v += math.Exp(-math.Abs(dist-radius)*0.6) * math.Exp(-(ctx.Time-d.born)*0.0004)
	}

	i := int(v * float64(len(ramp)))
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return buffer.Cell{Char: ramp[i], Color: "45"}
}
