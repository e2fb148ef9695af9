package view

import (
	"sync"
	"time"

	"life3d/internal/sims/life3d"
)

// Mode describes what the runner is currently doing.
type Mode int

const (
	// ModeManual means the simulation only advances on explicit Step calls.
	ModeManual Mode = iota
	// ModeRunning means the ticker goroutine is driving steps.
	ModeRunning
	// ModeFinished means a boundary condition ended the run.
	ModeFinished
)

// Status is a point-in-time summary of the driven world.
type Status struct {
	Generation int
	Population int
	Mode       Mode
	StepTime   time.Duration
	Reason     string
}

// Runner drives a world from a ticker goroutine at a fixed interval. The
// engine itself stays synchronous; this is the cancellable scheduling layer
// around it. All world access goes through the runner's lock.
type Runner struct {
	mu       sync.Mutex
	world    *life3d.World
	interval time.Duration
	maxSteps int

	mode     Mode
	reason   string
	stepTime time.Duration
	cancel   chan struct{}
	onChange func()
}

// NewRunner wraps a world. onChange is invoked after every state change and
// may be nil; it runs outside the lock.
func NewRunner(w *life3d.World, interval time.Duration, maxSteps int, onChange func()) *Runner {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Runner{world: w, interval: interval, maxSteps: maxSteps, onChange: onChange}
}

// SetOnChange installs the change listener after construction, for frontends
// that need the runner before they exist themselves.
func (r *Runner) SetOnChange(fn func()) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Do runs fn with exclusive access to the world and notifies listeners, for
// UI mutations such as painting.
func (r *Runner) Do(fn func(w *life3d.World)) {
	r.mu.Lock()
	fn(r.world)
	r.mu.Unlock()
	r.notify()
}

// View runs fn with exclusive access to the world without notifying, for
// render-path reads.
func (r *Runner) View(fn func(w *life3d.World)) {
	r.mu.Lock()
	fn(r.world)
	r.mu.Unlock()
}

// Status returns the current summary.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Generation: r.world.Generation(),
		Population: r.world.Grid().Population(),
		Mode:       r.mode,
		StepTime:   r.stepTime,
		Reason:     r.reason,
	}
}

// Step advances one generation unless the runner is mid-run.
func (r *Runner) Step() {
	r.mu.Lock()
	if r.mode != ModeRunning {
		r.step()
	}
	r.mu.Unlock()
	r.notify()
}

// Run starts the ticker goroutine. It returns immediately; a second call
// while running is a no-op.
func (r *Runner) Run() {
	r.mu.Lock()
	if r.mode == ModeRunning {
		r.mu.Unlock()
		return
	}
	r.mode = ModeRunning
	r.reason = ""
	cancel := make(chan struct{})
	r.cancel = cancel
	r.mu.Unlock()
	r.notify()

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				if !r.tick() {
					return
				}
			}
		}
	}()
}

// Stop halts a running ticker, leaving the world as is.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.mode == ModeRunning {
		r.mode = ModeManual
		close(r.cancel)
		r.cancel = nil
	}
	r.mu.Unlock()
	r.notify()
}

// Reset stops any run and reseeds the world.
func (r *Runner) Reset(seed int64) {
	r.Stop()
	r.mu.Lock()
	r.world.Reset(seed)
	r.mode = ModeManual
	r.reason = ""
	r.mu.Unlock()
	r.notify()
}

// Clear stops any run and kills every cell.
func (r *Runner) Clear() {
	r.Stop()
	r.mu.Lock()
	r.world.Clear()
	r.mode = ModeManual
	r.reason = ""
	r.mu.Unlock()
	r.notify()
}

// tick advances one generation and reports whether the run should continue.
func (r *Runner) tick() bool {
	r.mu.Lock()
	if r.mode != ModeRunning {
		r.mu.Unlock()
		return false
	}
	r.step()
	finished := r.mode == ModeFinished
	if finished && r.cancel != nil {
		close(r.cancel)
		r.cancel = nil
	}
	r.mu.Unlock()
	r.notify()
	return !finished
}

// step must be called with the lock held.
func (r *Runner) step() {
	start := time.Now()
	r.world.Step()
	r.stepTime = time.Since(start)

	switch {
	case r.world.Grid().Population() == 0:
		r.mode = ModeFinished
		r.reason = "extinct"
	case !r.world.Changed():
		r.mode = ModeFinished
		r.reason = "frozen"
	case r.maxSteps > 0 && r.world.Generation() >= r.maxSteps:
		r.mode = ModeFinished
		r.reason = "step limit"
	}
}

func (r *Runner) notify() {
	r.mu.Lock()
	fn := r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn()
	}
}
