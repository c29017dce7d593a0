package memory

import "time"

// Timer tracks game time against a fixed limit. Paused intervals are
// excluded from elapsed time.
type Timer struct {
	start       time.Time
	accumulated time.Duration // total time spent in finished pauses
	pauseStart  time.Time     // zero unless paused
	limit       time.Duration
}

// NewTimer starts a timer at now.
func NewTimer(now time.Time, limit time.Duration) Timer {
	return Timer{start: now, limit: limit}
}

// Paused reports whether the timer is frozen.
func (t *Timer) Paused() bool {
	return !t.pauseStart.IsZero()
}

// Pause freezes elapsed time at now. No-op if already paused.
func (t *Timer) Pause(now time.Time) {
	if t.Paused() {
		return
	}
	t.pauseStart = now
}

// Resume folds the finished pause into the accumulated pause time.
// No-op if not paused.
func (t *Timer) Resume(now time.Time) {
	if !t.Paused() {
		return
	}
	if d := now.Sub(t.pauseStart); d > 0 {
		t.accumulated += d
	}
	t.pauseStart = time.Time{}
}

// Elapsed returns game time spent unpaused.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	end := now
	if t.Paused() {
		end = t.pauseStart
	}
	e := end.Sub(t.start) - t.accumulated
	if e < 0 {
		return 0
	}
	return e
}

// Left returns remaining time, never negative.
func (t *Timer) Left(now time.Time) time.Duration {
	left := t.limit - t.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Limit returns the configured time limit.
func (t *Timer) Limit() time.Duration {
	return t.limit
}

// AccumulatedPause returns the total length of finished pauses.
func (t *Timer) AccumulatedPause() time.Duration {
	return t.accumulated
}
