package core

import "time"

// FixedStep meters simulation ticks at a steady ticks-per-second rate,
// decoupled from the caller's frame rate. Leftover frame time carries over
// between calls, and carried time is capped at one step so a long stall or
// pause never bursts the simulation to catch up.
type FixedStep struct {
	step  time.Duration
	carry time.Duration
	last  time.Time
	now   func() time.Time
}

// NewFixedStep constructs a controller targeting the given TPS. The first
// ShouldStep call fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.carry = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Resume restarts timing from now, discarding time that passed while the
// caller was not stepping. Call it when unpausing or reseeding.
func (f *FixedStep) Resume() {
	f.last = f.now()
	f.carry = 0
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	t := f.now()
	if f.last.IsZero() {
		f.last = t
	}
	f.carry += t.Sub(f.last)
	f.last = t
	if f.carry < f.step {
		return false
	}
	f.carry -= f.step
	if f.carry > f.step {
		f.carry = f.step
	}
	return true
}
