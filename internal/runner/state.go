package runner

// State is the persisted continuation record. It is the only data whose
// lifecycle crosses process restarts: read once at boot when restoration is
// enabled, overwritten on every accepted tick.
type State struct {
	Time  float64
	Frame int
	Cycle int
	FPS   float64
}

// StateStore persists State records keyed by a fixed identifier. Load
// failures must not be fatal: callers fall back to the zero state. Saves are
// fire-and-forget.
type StateStore interface {
	LoadState(key string) (State, error)
	SaveState(key string, st State) error
}
