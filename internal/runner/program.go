package runner

import "github.com/vovakirdan/playcell/internal/buffer"

// BootFunc runs once before the loop starts.
type BootFunc func(ctx *Context, buf *buffer.Buffer, userData any)

// PhaseFunc runs once per tick, before (Pre) or after (Post) the per-cell
// pass. It may mutate the buffer freely.
type PhaseFunc func(ctx *Context, cursor Cursor, buf *buffer.Buffer, userData any)

// MainFunc runs once per cell per tick. The returned cell is a patch: its
// non-zero fields are merged onto the existing cell, and a zero Char after
// the merge is forced to a space.
type MainFunc func(coord Coord, ctx *Context, cursor Cursor, buf *buffer.Buffer, userData any) buffer.Cell

// EventFunc handles one queued pointer event during the per-tick drain. It
// sees the Context, Cursor and Buffer of the draining tick, not of the tick
// the event fired in.
type EventFunc func(ctx *Context, cursor Cursor, buf *buffer.Buffer)

// Program is the fixed-shape record of optional lifecycle and event handlers
// the runner drives. A nil field simply skips that phase; absence is not an
// error. Presence is checked once when the runner binds the program, not per
// tick.
type Program struct {
	Boot BootFunc
	Pre  PhaseFunc
	Main MainFunc
	Post PhaseFunc

	PointerMove EventFunc
	PointerDown EventFunc
	PointerUp   EventFunc

	// Settings, when non-nil, is the top layer of the settings merge.
	Settings *Settings
}
