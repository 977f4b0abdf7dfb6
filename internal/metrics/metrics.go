// Package metrics measures the rendering surface: the terminal size and the
// geometry of one character cell. The probe measures once at construction and
// exposes Refresh for explicit re-measurement; it never notifies dependents.
package metrics

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Measurement errors are fatal configuration errors: the runner must not
// start without a measurable surface.
var (
	ErrNoSurface   = errors.New("metrics: no output surface")
	ErrNotTerminal = errors.New("metrics: output is not a terminal")
)

// defaultAspect is the width/height ratio of a typical monospace glyph box.
const defaultAspect = 0.5

// Metrics is the measured cell geometry. CellWidth and LineHeight are in
// surface units (one character cell each on a terminal); Aspect is
// CellWidth divided by the rendered glyph box height.
type Metrics struct {
	CellWidth  float64
	LineHeight float64
	Aspect     float64
}

// Default returns the cell geometry of a standard terminal surface, for
// hosts that know the surface is a terminal but cannot probe it locally,
// such as remote PTY sessions.
func Default() Metrics {
	return Metrics{CellWidth: 1, LineHeight: 1, Aspect: defaultAspect}
}

// Probe measures a terminal surface.
type Probe struct {
	out  *os.File
	m    Metrics
	cols int
	rows int
}

// NewProbe measures the given surface once. It fails if the surface is
// missing or cannot be measured.
func NewProbe(out *os.File) (*Probe, error) {
	if out == nil {
		return nil, ErrNoSurface
	}
	if !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}
	p := &Probe{out: out, m: Default()}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// Refresh re-measures the surface size. Callers relying on updated metrics
// must invoke it explicitly; nothing is re-measured behind their back.
func (p *Probe) Refresh() error {
	cols, rows, err := term.GetSize(int(p.out.Fd()))
	if err != nil {
		return fmt.Errorf("metrics: cannot measure surface: %w", err)
	}
	p.cols = cols
	p.rows = rows
	return nil
}

// Metrics returns the measured cell geometry.
func (p *Probe) Metrics() Metrics {
	return p.m
}

// Size returns the surface size in cells as of the last Refresh.
func (p *Probe) Size() (cols, rows int) {
	return p.cols, p.rows
}
