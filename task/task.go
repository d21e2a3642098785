// Package task implements the per-frame task-graph scheduler shared by
// every subsystem in spec §4.8/§5: resource managers, the particle player,
// the physics bridge, and the frame-graph wiring each assemble a small DAG
// of Tasks and hand it to a Scheduler for one frame.
//
// A Task runs to completion on a single worker; there is no cooperative
// yielding inside a task (spec §5). Dependencies are declared explicitly
// via After, building an explicit dependency-counted DAG instead of a
// single fixed pipeline.
package task

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/kwcore/engine/task")

// Fn is the work a Task performs. It receives the frame context and
// returns an error if the task failed; per spec §7, nothing retries
// automatically and a non-nil error is fatal for that task's graph.
type Fn func(ctx context.Context) error

// Task is one node in a per-frame task graph. Construct with NewTask and
// link with After before handing the roots to Scheduler.Run.
type Task struct {
	Name string
	fn   Fn

	pending    atomic.Int32 // unresolved input dependencies.
	initial    int32        // pending's starting value, for re-running the same graph.
	dependents []*Task      // tasks that declared this task as an input.
}

// NewTask creates a Task with no dependencies. A nil fn makes the task a
// NoopTask (spec §4.8): a pure synchronization point that exists only as
// an output-dependency target, e.g. a manager's "end" task.
func NewTask(name string, fn Fn) *Task {
	if fn == nil {
		fn = func(context.Context) error { return nil }
	}
	return &Task{Name: name, fn: fn}
}

// NoopTask creates a Task that does nothing but complete, per spec §4.8
// ("Every end sync node is a NoopTask whose sole purpose is to serve as an
// output-dependency target").
func NoopTask(name string) *Task { return NewTask(name, nil) }

// After declares that t must run only after every given input task has
// completed, and returns t for chaining (task := NewTask(...).After(a, b)).
func (t *Task) After(inputs ...*Task) *Task {
	for _, in := range inputs {
		in.dependents = append(in.dependents, t)
		t.initial++
	}
	return t
}

// addDependent registers d as depending on t's completion outside of the
// static After wiring — used by Spawn to hook a dynamically created task
// into an already-running graph (resource.Manager's begin task spawning
// per-path workers, spec §4.3).
func (t *Task) addDependent(d *Task) {
	t.dependents = append(t.dependents, d)
}

func (t *Task) run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, t.Name, trace.WithAttributes())
	defer span.End()
	err := t.fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}
