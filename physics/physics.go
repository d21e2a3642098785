// Package physics defines the contract this module consumes from an
// external physics engine without implementing one (spec §1's "third-party
// physics engine bindings, treated as opaque; a physics scene simply
// consumes rigid-actor and controller primitives"). Nothing in this package
// simulates anything; Scene, Shape, RigidActor, and Controller are the
// seams a real binding plugs into.
package physics

import (
	"context"

	"github.com/kwcore/engine/task"
)

// Scene is the opaque bridge to an external physics engine, advanced once
// per frame by the begin/end task pair CreateTasks wires up (spec §4.8:
// "physics-scene.begin (simulate) -> physics-scene.end (fetchResults)").
// A concrete binding's Scene also owns whatever insertion/removal callbacks
// it needs from AddActor/RemoveActor; this module never reaches past the
// interface.
type Scene interface {
	Simulate(elapsed float64)
	FetchResults()
	AddActor(a *RigidActor)
	RemoveActor(a *RigidActor)
}

// CreateTasks allocates scene's per-frame begin/end pair. elapsed is read
// fresh on every begin call so callers can update it between frames without
// reconstructing the task pair.
func CreateTasks(scene Scene, elapsed func() float64) (begin, end *task.Task) {
	begin = task.NewTask("physics-scene-begin", func(ctx context.Context) error {
		scene.Simulate(elapsed())
		return nil
	})
	fetch := task.NewTask("physics-scene-fetch", func(ctx context.Context) error {
		scene.FetchResults()
		return nil
	}).After(begin)
	end = task.NoopTask("physics-scene-end").After(fetch)
	return begin, end
}
