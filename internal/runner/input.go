package runner

import "sync"

// EventKind identifies a queued input event.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
)

// Input is the runner-owned input state. The host's input layer feeds it
// through the Pointer* callbacks, which only mutate pointer state and push
// to the event queue; delivery to program handlers happens at the single
// drain point per tick. A mutex guards it because hosts may deliver input
// from another goroutine.
type Input struct {
	mu    sync.Mutex
	cur   PointerState // raw surface coordinates
	prev  PointerState // shadow copy, advanced once per accepted tick
	queue []EventKind
}

// PointerMove records a pointer position in surface coordinates.
func (in *Input) PointerMove(x, y float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.cur.X, in.cur.Y = x, y
	in.queue = append(in.queue, EventPointerMove)
}

// PointerDown records a press at the given surface coordinates.
func (in *Input) PointerDown(x, y float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.cur = PointerState{X: x, Y: y, Pressed: true}
	in.queue = append(in.queue, EventPointerDown)
}

// PointerUp records a release at the given surface coordinates.
func (in *Input) PointerUp(x, y float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.cur = PointerState{X: x, Y: y, Pressed: false}
	in.queue = append(in.queue, EventPointerUp)
}

// sample returns the current and previous pointer states.
func (in *Input) sample() (cur, prev PointerState) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.cur, in.prev
}

// commit snapshots the current pointer into the previous slot. Called
// exactly once per accepted tick, after cursor derivation.
func (in *Input) commit() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.prev = in.cur
}

// drain swaps out the queued events in FIFO order. Events enqueued while the
// returned slice is being dispatched land in the next drain.
func (in *Input) drain() []EventKind {
	in.mu.Lock()
	defer in.mu.Unlock()
	q := in.queue
	in.queue = nil
	return q
}
