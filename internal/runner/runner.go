// Package runner implements the frame scheduler at the core of playcell: it
// drives a program once per cell per rendered frame over a 2D character
// grid and hands the result to a renderer. The runner is host-agnostic; a
// host feeds it animation-frame signals through Frame and input through the
// Input callbacks.
package runner

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/playcell/internal/buffer"
	"github.com/vovakirdan/playcell/internal/metrics"
)

// Configuration errors, raised synchronously before the loop starts.
var (
	ErrNoRenderer = errors.New("runner: no renderer configured")
	ErrNoSurface  = errors.New("runner: surface not measured")
	ErrNoCells    = errors.New("runner: grid has no cells")
)

// Renderer paints one frame. Implementations must treat both arguments as
// read-only.
type Renderer interface {
	Render(ctx *Context, buf *buffer.Buffer) string
}

// Options carries the collaborators the runner composes.
type Options struct {
	// Metrics is the measured cell geometry of the surface. Required.
	Metrics metrics.Metrics

	// SurfaceCols and SurfaceRows are the surface size in cells. Axes pinned
	// by Settings.Cols/Rows ignore them.
	SurfaceCols int
	SurfaceRows int

	// Renderer paints accepted frames. Required.
	Renderer Renderer

	// Store persists continuation state. Optional; only consulted when
	// Settings.RestoreState is set.
	Store StateStore

	// StateKey identifies the persisted record, typically the program id.
	StateKey string

	// Logger is the diagnostics channel. Optional.
	Logger *log.Logger

	// UserData is passed through to every program phase.
	UserData any

	// Now is the boot instant. Zero means time.Now().
	Now time.Time
}

// Runner owns the render loop: time and frame bookkeeping, pointer and event
// sampling, buffer lifecycle, and program invocation order. It is
// single-threaded: the host must call Frame from one goroutine, and a new
// signal is processed only after the previous tick finished.
type Runner struct {
	set      Settings
	metrics  metrics.Metrics
	renderer Renderer
	store    StateStore
	stateKey string
	logger   *log.Logger
	userData any

	boot   BootFunc
	pre    PhaseFunc
	main   MainFunc
	post   PhaseFunc
	events map[EventKind]EventFunc

	input *Input
	buf   *buffer.Buffer
	base  buffer.Cell

	surfaceCols int
	surfaceRows int

	epoch      time.Time
	lastSample time.Time
	interval   time.Duration
	timeOffset float64
	timeMS     float64
	frame      int
	cycle      int
	fps        fpsTracker

	out        string
	stopped    bool
	warnedSave bool
}

// New builds a runner for the given program and performs the boot sequence:
// settings are merged (defaults, then set, then the program's exported
// settings), persisted state is restored when enabled, phase presence is
// bound, the initial buffer is allocated and the program's Boot phase runs.
func New(prog Program, set Settings, opts Options) (*Runner, error) {
	if opts.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if opts.Metrics.CellWidth <= 0 || opts.Metrics.LineHeight <= 0 {
		return nil, ErrNoSurface
	}

	merged := MergeSettings(DefaultSettings(), set)
	if prog.Settings != nil {
		merged = MergeSettings(merged, *prog.Settings)
	}
	if merged.FPS <= 0 {
		merged.FPS = DefaultFPS
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	r := &Runner{
		set:         merged,
		metrics:     opts.Metrics,
		renderer:    opts.Renderer,
		store:       opts.Store,
		stateKey:    opts.StateKey,
		logger:      logger,
		userData:    opts.UserData,
		boot:        prog.Boot,
		pre:         prog.Pre,
		main:        prog.Main,
		post:        prog.Post,
		input:       &Input{},
		base:        merged.baseCell(),
		surfaceCols: opts.SurfaceCols,
		surfaceRows: opts.SurfaceRows,
		epoch:       now,
		interval:    time.Second / time.Duration(merged.FPS),
	}

	r.events = map[EventKind]EventFunc{
		EventPointerMove: prog.PointerMove,
		EventPointerDown: prog.PointerDown,
		EventPointerUp:   prog.PointerUp,
	}

	cols, rows := r.gridSize()
	if cols <= 0 || rows <= 0 {
		return nil, ErrNoCells
	}

	st := State{FPS: float64(merged.FPS)}
	if merged.RestoreState && r.store != nil {
		if loaded, err := r.store.LoadState(r.stateKey); err == nil {
			st = loaded
			st.Cycle++
		} else {
			logger.Debug("no state restored", "key", r.stateKey, "error", err)
		}
	}
	r.timeOffset = st.Time
	r.frame = st.Frame
	r.cycle = st.Cycle
	r.fps.value = st.FPS

	// First signal is always accepted.
	r.lastSample = now.Add(-r.interval)

	r.buf = buffer.New(cols, rows, r.base)
	if r.boot != nil {
		ctx := r.context(cols, rows)
		r.boot(ctx, r.buf, r.userData)
	}
	return r, nil
}

// Input returns the input-state object the host's input layer feeds.
func (r *Runner) Input() *Input {
	return r.input
}

// Interval returns the target frame interval derived from the fps setting.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// Settings returns the merged, read-only settings.
func (r *Runner) Settings() Settings {
	return r.set
}

// Output returns the renderer's output for the last accepted frame.
func (r *Runner) Output() string {
	return r.out
}

// Done reports whether a single-shot run has finished.
func (r *Runner) Done() bool {
	return r.stopped
}

// FrameCount returns the number of the last accepted frame.
func (r *Runner) FrameCount() int {
	return r.frame
}

// Buffer returns the current frame buffer.
func (r *Runner) Buffer() *buffer.Buffer {
	return r.buf
}

// SetSurfaceSize reports a new surface size in cells. The grid is
// renormalized at the start of the next accepted tick, never mid-frame.
func (r *Runner) SetSurfaceSize(cols, rows int) {
	r.surfaceCols = cols
	r.surfaceRows = rows
}

// gridSize resolves the grid dimensions: axes pinned to a nonzero value in
// the settings stay fixed, the rest follow the surface.
func (r *Runner) gridSize() (cols, rows int) {
	cols, rows = r.set.Cols, r.set.Rows
	if cols <= 0 {
		cols = r.surfaceCols
	}
	if rows <= 0 {
		rows = r.surfaceRows
	}
	return cols, rows
}

func (r *Runner) context(cols, rows int) *Context {
	return &Context{
		Frame:    r.frame,
		Time:     r.timeMS,
		Cols:     cols,
		Rows:     rows,
		Metrics:  r.metrics,
		Width:    float64(cols) * r.metrics.CellWidth,
		Height:   float64(rows) * r.metrics.LineHeight,
		Settings: r.set,
		Runtime:  Runtime{Cycle: r.cycle, FPS: r.fps.Value()},
	}
}

// deriveCursor converts the raw pointer sample to fractional cell
// coordinates, clamped so the cursor never addresses a cell outside the
// grid.
func (r *Runner) deriveCursor(cols, rows int) Cursor {
	cur, prev := r.input.sample()
	toCell := func(p PointerState) PointerState {
		maxX := float64(cols - 1)
		maxY := float64(rows - 1)
		if maxX < 0 {
			maxX = 0
		}
		if maxY < 0 {
			maxY = 0
		}
		return PointerState{
			X:       clampF(p.X/r.metrics.CellWidth, 0, maxX),
			Y:       clampF(p.Y/r.metrics.LineHeight, 0, maxY),
			Pressed: p.Pressed,
		}
	}
	c := toCell(cur)
	return Cursor{X: c.X, Y: c.Y, Pressed: c.Pressed, Prev: toCell(prev)}
}

// Frame processes one animation-frame signal and reports whether it was
// accepted. Signals arriving before the target interval has elapsed are
// skipped without touching any state; acceptance advances the frame counter,
// runs the program phases in order, paints the frame and drains the event
// queue.
func (r *Runner) Frame(now time.Time) bool {
	if r.stopped {
		return false
	}

	delta := now.Sub(r.lastSample)
	if delta < 0 {
		// Signal clock went backwards (host sleep/wake): resync and skip.
		r.lastSample = now
		return false
	}
	if delta < r.interval {
		return false
	}

	// Phase-correct accumulator: keeps the long-run rate within one
	// interval of the target even under irregular signal timing.
	r.lastSample = now.Add(-(delta % r.interval))
	r.timeMS = float64(now.Sub(r.epoch))/float64(time.Millisecond) + r.timeOffset
	r.frame++
	r.fps.sample(now)

	if r.set.RestoreState && r.store != nil {
		err := r.store.SaveState(r.stateKey, State{
			Time:  r.timeMS,
			Frame: r.frame,
			Cycle: r.cycle,
			FPS:   r.fps.Value(),
		})
		if err != nil && !r.warnedSave {
			r.logger.Warn("state save failed", "key", r.stateKey, "error", err)
			r.warnedSave = true
		}
	}

	cols, rows := r.gridSize()
	ctx := r.context(cols, rows)

	cursor := r.deriveCursor(cols, rows)
	r.input.commit()

	if cols != r.buf.Cols() || rows != r.buf.Rows() {
		r.buf = buffer.New(cols, rows, r.base)
	}

	if r.pre != nil {
		r.pre(ctx, cursor, r.buf, r.userData)
	}

	if r.main != nil {
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				coord := Coord{X: x, Y: y, Index: x + y*cols}
				patch := r.main(coord, ctx, cursor, r.buf, r.userData)
				cell := r.buf.Get(x, y).Merge(patch)
				if cell.Char == 0 {
					cell.Char = ' '
				}
				r.buf.Set(cell, x, y)
			}
		}
	}

	if r.post != nil {
		r.post(ctx, cursor, r.buf, r.userData)
	}

	r.out = r.renderer.Render(ctx, r.buf)

	for _, kind := range r.input.drain() {
		if h := r.events[kind]; h != nil {
			h(ctx, cursor, r.buf)
		}
	}

	if r.set.Once {
		r.stopped = true
	}
	return true
}
