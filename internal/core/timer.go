package core

// Timer is a frame-counting countdown. All gameplay delays (invulnerability,
// cooldowns, squash, death and completion delays) are measured in ticks so
// identical input sequences produce identical runs.
type Timer struct {
	duration  int
	remaining int
}

// NewTimer creates a stopped timer with the given default duration.
func NewTimer(duration int) Timer {
	return Timer{duration: duration}
}

// Start restarts the countdown from the default duration.
func (t *Timer) Start() {
	t.remaining = t.duration
}

// StartWith restarts the countdown from n ticks.
func (t *Timer) StartWith(n int) {
	if n < 0 {
		n = 0
	}
	t.remaining = n
}

// Tick advances the timer by one frame.
// Returns true on the tick the timer reaches zero.
func (t *Timer) Tick() bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining--
	return t.remaining == 0
}

// Stop clears the timer without firing.
func (t *Timer) Stop() {
	t.remaining = 0
}

// Active reports whether the countdown is still running.
func (t Timer) Active() bool {
	return t.remaining > 0
}

// Done is the inverse of Active.
func (t Timer) Done() bool {
	return t.remaining <= 0
}

// Remaining returns the ticks left.
func (t Timer) Remaining() int {
	return t.remaining
}

// Elapsed returns ticks since the last Start, clamped to the duration.
func (t Timer) Elapsed() int {
	e := t.duration - t.remaining
	if e < 0 {
		return 0
	}
	return e
}

// Duration returns the default duration.
func (t Timer) Duration() int {
	return t.duration
}
