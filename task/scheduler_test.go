package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRunOrdersByDependency(t *testing.T) {
	var mu sync.Mutex
	var order []string
	record := func(name string) Fn {
		return func(context.Context) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil
		}
	}

	begin := NewTask("begin", record("begin"))
	w1 := NewTask("w1", record("w1")).After(begin)
	w2 := NewTask("w2", record("w2")).After(begin)
	end := NewTask("end", record("end")).After(w1, w2)

	s := NewScheduler(4)
	if err := s.Run(context.Background(), begin); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(order) != 4 {
		t.Fatalf("expected 4 tasks to run, got %v", order)
	}
	if order[0] != "begin" {
		t.Errorf("begin must run first, got order %v", order)
	}
	endPos, w1Pos, w2Pos := -1, -1, -1
	for i, n := range order {
		switch n {
		case "end":
			endPos = i
		case "w1":
			w1Pos = i
		case "w2":
			w2Pos = i
		}
	}
	if endPos < w1Pos || endPos < w2Pos {
		t.Errorf("end must run after both workers: order %v", order)
	}
	_ = end
}

func TestRunIsRepeatable(t *testing.T) {
	var runs atomic.Int32
	begin := NewTask("begin", func(context.Context) error { return nil })
	end := NoopTask("end").After(begin)
	_ = end

	work := NewTask("work", func(context.Context) error {
		runs.Add(1)
		return nil
	}).After(begin)
	_ = work

	s := NewScheduler(2)
	for frame := 0; frame < 3; frame++ {
		if err := s.Run(context.Background(), begin); err != nil {
			t.Fatalf("frame %d: Run: %v", frame, err)
		}
	}
	if runs.Load() != 3 {
		t.Errorf("expected work to run once per frame (3 frames), got %d", runs.Load())
	}
}

func TestRunAggregatesErrors(t *testing.T) {
	boom := errors.New("boom")
	begin := NewTask("begin", func(context.Context) error { return nil })
	a := NewTask("a", func(context.Context) error { return boom }).After(begin)
	b := NewTask("b", func(context.Context) error { return boom }).After(begin)
	_, _ = a, b

	s := NewScheduler(4)
	err := s.Run(context.Background(), begin)
	if err == nil {
		t.Fatalf("expected an aggregated error")
	}
}

func TestDependentNeverRunsIfInputMissing(t *testing.T) {
	begin := NewTask("begin", func(context.Context) error { return nil })
	other := NewTask("other", func(context.Context) error { return nil })
	var ran atomic.Bool
	joined := NewTask("joined", func(context.Context) error {
		ran.Store(true)
		return nil
	}).After(begin, other)
	_ = joined

	s := NewScheduler(2)
	// Only "begin" is passed as a root; "other" never runs, so "joined"
	// must never become ready even though the scheduler completes.
	if err := s.Run(context.Background(), begin); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ran.Load() {
		t.Errorf("joined task should not run without all of its inputs as roots")
	}
}
