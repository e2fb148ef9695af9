package view

import (
	"testing"
	"time"

	"life3d/internal/sims/life3d"
)

func newTestWorld(n int) *life3d.World {
	cfg := life3d.DefaultConfig()
	cfg.GridSize = n
	return life3d.NewWorld(cfg, 0)
}

func TestRunnerManualStep(t *testing.T) {
	notified := 0
	r := NewRunner(newTestWorld(6), time.Millisecond, 0, func() { notified++ })

	r.Do(func(w *life3d.World) {
		w.SetCell(3, 3, 3, 1)
	})
	r.Step()

	s := r.Status()
	if s.Generation != 1 {
		t.Fatalf("generation = %d, want 1", s.Generation)
	}
	if notified == 0 {
		t.Fatal("mutations must notify the change listener")
	}
}

func TestRunnerFinishesOnExtinction(t *testing.T) {
	r := NewRunner(newTestWorld(6), time.Millisecond, 0, nil)
	r.Do(func(w *life3d.World) {
		w.SetCell(2, 2, 2, 1) // lone cell dies on the next step
	})

	r.Step()
	s := r.Status()
	if s.Mode != ModeFinished || s.Reason != "extinct" {
		t.Fatalf("status = %+v, want finished/extinct", s)
	}
}

func TestRunnerFinishesOnStepLimit(t *testing.T) {
	cfg := life3d.DefaultConfig()
	cfg.GridSize = 8
	w := life3d.NewWorld(cfg, 0.2)
	w.Reset(5)
	r := NewRunner(w, time.Millisecond, 2, nil)

	r.Step()
	r.Step()
	s := r.Status()
	if s.Generation != 2 {
		t.Fatalf("generation = %d, want 2", s.Generation)
	}
	if s.Mode != ModeFinished {
		t.Fatalf("mode = %v, want finished", s.Mode)
	}
}

func TestRunnerResetAndClear(t *testing.T) {
	w := newTestWorld(6)
	r := NewRunner(w, time.Millisecond, 0, nil)

	r.Reset(99)
	if r.Status().Generation != 0 {
		t.Fatal("reset must zero the generation counter")
	}

	r.Do(func(w *life3d.World) {
		w.SetCell(1, 1, 1, 1)
	})
	r.Clear()
	if pop := r.Status().Population; pop != 0 {
		t.Fatalf("population after clear = %d, want 0", pop)
	}
	if r.Status().Mode != ModeManual {
		t.Fatal("clear must return the runner to manual mode")
	}
}

func TestRunnerRunStopsOnFinish(t *testing.T) {
	r := NewRunner(newTestWorld(6), time.Millisecond, 0, nil)
	r.Do(func(w *life3d.World) {
		w.SetCell(2, 2, 2, 1)
	})

	r.Run()
	deadline := time.After(2 * time.Second)
	for r.Status().Mode != ModeFinished {
		select {
		case <-deadline:
			t.Fatal("runner did not finish after extinction")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if r.Status().Reason != "extinct" {
		t.Fatalf("finish reason = %q, want extinct", r.Status().Reason)
	}
}
