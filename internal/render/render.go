// Package render provides the built-in renderer back ends. Renderers consume
// an immutable (context, buffer) pair and produce the frame string the host
// presents; they never mutate their arguments.
package render

import "github.com/vovakirdan/playcell/internal/runner"

// Kind enumerates the supported renderer back ends.
type Kind int

const (
	// Text paints cells with their styles as ANSI escape sequences.
	Text Kind = iota
	// Plain paints bare characters with no styling, suitable for piping.
	Plain
)

// ParseKind maps a renderer name to its kind. Unrecognized names fall back
// to the text renderer.
func ParseKind(name string) Kind {
	switch name {
	case "plain":
		return Plain
	default:
		return Text
	}
}

// String returns the selection key for the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	default:
		return "text"
	}
}

// New creates the renderer for the given kind.
func New(k Kind) runner.Renderer {
	switch k {
	case Plain:
		return plainRenderer{}
	default:
		return newTextRenderer()
	}
}
