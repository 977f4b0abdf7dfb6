package runner

import "github.com/vovakirdan/playcell/internal/metrics"

// Runtime carries per-tick runtime statistics exposed on the Context.
type Runtime struct {
	Cycle int
	FPS   float64
}

// Context is the immutable per-tick snapshot handed to program phases and
// renderers. A fresh Context is built at the start of every accepted tick
// and discarded at tick end; it is never mutated after construction.
type Context struct {
	Frame    int
	Time     float64 // milliseconds since boot, plus any restored offset
	Cols     int
	Rows     int
	Metrics  metrics.Metrics
	Width    float64
	Height   float64
	Settings Settings
	Runtime  Runtime
}

// Coord addresses one cell during the per-cell pass. Index = X + Y*Cols.
type Coord struct {
	X     int
	Y     int
	Index int
}

// PointerState is a pointer position in grid-cell units plus its button.
type PointerState struct {
	X       float64
	Y       float64
	Pressed bool
}

// Cursor is the per-tick pointer sample: the current state plus the state
// from the immediately preceding tick.
type Cursor struct {
	X       float64
	Y       float64
	Pressed bool
	Prev    PointerState
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
