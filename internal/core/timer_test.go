package core

import (
	"testing"
	"time"
)

// fakeClock lets tests drive FixedStep deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *fakeClock) now() time.Time          { return c.t }

func newTestStepper(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepPacesTicks(t *testing.T) {
	fs, clock := newTestStepper(10) // 100ms per tick

	if !fs.ShouldStep() {
		t.Fatal("first call must step immediately")
	}
	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, must not step yet")
	}
	clock.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed, must step")
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs, clock := newTestStepper(10)
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("stall produced %d catch-up steps, want at most 2", steps)
	}
}

func TestFixedStepResumeDropsIdleTime(t *testing.T) {
	fs, clock := newTestStepper(10)
	fs.ShouldStep()

	clock.advance(30 * time.Second) // paused
	fs.Resume()
	if fs.ShouldStep() {
		t.Fatal("resume must not fire a tick from idle time")
	}
	clock.advance(110 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step after resume must tick")
	}
}

func TestFixedStepDefaultsBadTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, want the 60 TPS default", fs.step)
	}
	fs.SetTPS(-5)
	if fs.step != time.Second/60 {
		t.Fatalf("step after SetTPS(-5) = %v, want the 60 TPS default", fs.step)
	}
}
