package runner

import "time"

// fpsTracker keeps a trailing one-second measurement of the actual frame
// rate. It is fed once per accepted tick, never on skipped signals.
type fpsTracker struct {
	count int
	since time.Time
	value float64
}

func (t *fpsTracker) sample(now time.Time) {
	if t.since.IsZero() {
		t.since = now
	}
	t.count++
	if d := now.Sub(t.since); d >= time.Second {
		t.value = float64(t.count) / d.Seconds()
		t.count = 0
		t.since = now
	}
}

func (t *fpsTracker) Value() float64 {
	return t.value
}
