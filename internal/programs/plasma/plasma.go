// Package plasma is a bundled program: a pure function of cell coordinate
// and time, no state between ticks.
package plasma

import (
	"math"

	"github.com/vovakirdan/playcell/internal/buffer"
	"github.com/vovakirdan/playcell/internal/registry"
	"github.com/vovakirdan/playcell/internal/runner"
)

var (
	ramp = []rune(" .:-=+*#%@")
	// 256-color gradient, cold to hot.
	palette = []string{"17", "18", "19", "20", "21", "57", "93", "129", "165", "201"}
)

func init() {
	registry.Register("plasma", "Plasma", New)
}

// New creates the program.
func New() runner.Program {
	return runner.Program{Main: mainCell}
}

func mainCell(c runner.Coord, ctx *runner.Context, _ runner.Cursor, _ *buffer.Buffer, _ any) buffer.Cell {
	t := ctx.Time * 0.0012

	// Compensate for the glyph box being taller than wide.
	x := float64(c.X)
	y := float64(c.Y) / ctx.Metrics.Aspect

	v := math.Sin(x*0.22+t) +
		math.Sin(y*0.18-t*1.3) +
		math.Sin((x+y)*0.13+t*0.7) +
		math.Sin(math.Hypot(x-float64(ctx.Cols)/2, y-float64(ctx.Rows))*0.2-t)

	// v is in [-4, 4]; normalize to [0, 1).
	n := (v + 4) / 8
	if n < 0 {
		n = 0
	}
	if n >= 1 {
		n = 0.9999
	}

	i := int(n * float64(len(ramp)))
	return buffer.Cell{Char: ramp[i], Color: palette[i]}
}
