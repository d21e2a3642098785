package task

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs per-frame task graphs across a bounded worker pool,
// approximating the "multi-threaded work-stealing pool" of spec §5 with
// the idiomatic Go equivalent the spec's design notes explicitly allow
// ("channels + worker threads or a dependency-tracking scheduler"): a
// semaphore-bounded errgroup plus atomic dependency counters (task.go).
type Scheduler struct {
	sem *Semaphore
}

// NewScheduler creates a Scheduler with the given worker concurrency.
func NewScheduler(workers int) *Scheduler {
	return &Scheduler{sem: NewSemaphore(workers)}
}

// Run executes the task graph reachable from roots (via After edges) to
// completion. roots must be exactly the tasks with no unresolved inputs;
// omitting one strands its downstream dependents forever, since nothing
// will ever decrement their pending count to zero.
//
// Per spec §7, task failures are not retried; Run cancels the remainder
// of the in-flight graph on first error but keeps whatever already-running
// siblings report, aggregating every reported error with multierr so the
// caller's fatal-error facility sees the complete failure set.
func (s *Scheduler) Run(ctx context.Context, roots ...*Task) error {
	all := reachable(roots)
	for _, t := range all {
		t.pending.Store(t.initial)
	}

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	var errs error

	var submit func(t *Task)
	submit = func(t *Task) {
		s.sem.Acquire()
		g.Go(func() error {
			err := t.run(gctx)
			s.sem.Release()
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("task %s: %w", t.Name, err))
				mu.Unlock()
				return err
			}
			for _, dep := range t.dependents {
				if dep.pending.Add(-1) == 0 {
					submit(dep)
				}
			}
			return nil
		})
	}
	gctx = context.WithValue(gctx, runHandleKey{}, &runHandle{submit: submit})

	for _, r := range roots {
		if r.pending.Load() == 0 {
			submit(r)
		}
	}
	_ = g.Wait() // errors are collected into errs; g.Wait's own return is redundant with it.
	return errs
}

// runHandleKey is the context key a running Scheduler uses to expose its
// submit function to Spawn/ReleaseOutput calls made from inside a task's Fn.
type runHandleKey struct{}

type runHandle struct {
	submit func(t *Task)
}

func handleFrom(ctx context.Context) *runHandle {
	rh, _ := ctx.Value(runHandleKey{}).(*runHandle)
	return rh
}

// Spawn registers w as a dynamically created input of every given output
// task and submits w for immediate execution. w must have no unresolved
// inputs of its own (it is a fresh leaf task, not built with After). This
// is how a resource manager's begin task (spec §4.3) fans out one worker
// task per pending load after the graph has already started running;
// ReserveOutput/ReleaseOutput must bracket the calls to avoid outputs being
// submitted before every worker has been registered. Spawn panics if ctx
// was not produced by a Scheduler.Run call.
func Spawn(ctx context.Context, w *Task, outputs ...*Task) {
	rh := handleFrom(ctx)
	if rh == nil {
		panic("task: Spawn called outside Scheduler.Run")
	}
	for _, out := range outputs {
		out.pending.Add(1)
		out.addDependent(w)
	}
	rh.submit(w)
}

// ReserveOutput holds out back from running by one extra unit, released
// later with ReleaseOutput. Call it before a loop that may call Spawn zero
// or more times against out, so that a zero-worker frame still reaches a
// well-defined "release" point instead of racing the last worker's own
// decrement.
func ReserveOutput(out *Task) { out.pending.Add(1) }

// ReleaseOutput releases a reservation made by ReserveOutput, submitting
// out if that was its last unresolved input. It panics if ctx was not
// produced by a Scheduler.Run call.
func ReleaseOutput(ctx context.Context, out *Task) {
	if out.pending.Add(-1) == 0 {
		rh := handleFrom(ctx)
		if rh == nil {
			panic("task: ReleaseOutput called outside Scheduler.Run")
		}
		rh.submit(out)
	}
}

// reachable returns every task reachable from roots by following
// dependent edges forward, deduplicated.
func reachable(roots []*Task) []*Task {
	seen := make(map[*Task]bool)
	var all []*Task
	var walk func(t *Task)
	walk = func(t *Task) {
		if seen[t] {
			return
		}
		seen[t] = true
		all = append(all, t)
		for _, d := range t.dependents {
			walk(d)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return all
}
