// Package frame assembles one frame's task graph per spec §4.8: input.update,
// imgui.update, each per-manager begin/workers/end, the particle-player
// begin/workers/end and the physics-scene begin/end all branch off
// timer.update; frame-graph acquire/passes/present runs after imgui.update
// and every one of those end tasks. The graph is handed in one shot to a
// task.Scheduler each frame.
package frame

import (
	"context"

	"github.com/kwcore/engine/particle"
	"github.com/kwcore/engine/physics"
	"github.com/kwcore/engine/render"
	"github.com/kwcore/engine/task"
)

// Manager is satisfied by every resource.Manager[T] instantiation (via its
// CreateTasks method) — frame.Graph only needs the begin/end pair, not the
// concrete resource type, so it stays ungeneric over T.
type Manager interface {
	CreateTasks() (begin, end *task.Task)
}

// Graph holds one frame's subsystems and builds their task DAG. Host
// facilities with no natural Go analogue in this module (timer, input,
// imgui) are plain task.Fn values the caller supplies; Player/Physics/
// FrameGraph are this module's own package contracts.
type Graph struct {
	Timer task.Fn
	Input task.Fn
	Imgui task.Fn

	Managers []Manager

	Player *particle.Player

	Physics        physics.Scene
	PhysicsElapsed func() float64

	FrameGraph render.FrameGraph
	Passes     []render.Pass
}

// Build assembles this frame's task graph and returns its root(s) — tasks
// with no unresolved inputs — ready to hand to task.Scheduler.Run. Per spec
// §4.8, imgui.update must run before any frame-graph task since imgui is
// single-threaded; every other branch off timer.update is independent.
func (g *Graph) Build() []*task.Task {
	timer := task.NewTask("timer-update", fnOrNoop(g.Timer))
	task.NewTask("input-update", fnOrNoop(g.Input)).After(timer)
	imgui := task.NewTask("imgui-update", fnOrNoop(g.Imgui)).After(timer)

	fgBegin, _ := render.CreateTasks(g.FrameGraph, g.Passes)
	fgBegin.After(imgui)

	for _, m := range g.Managers {
		begin, end := m.CreateTasks()
		begin.After(timer)
		fgBegin.After(end)
	}

	if g.Player != nil {
		pBegin, pEnd := g.Player.CreateTasks()
		pBegin.After(timer)
		fgBegin.After(pEnd)
	}

	if g.Physics != nil {
		elapsed := g.PhysicsElapsed
		if elapsed == nil {
			elapsed = func() float64 { return 0 }
		}
		phBegin, phEnd := physics.CreateTasks(g.Physics, elapsed)
		phBegin.After(timer)
		fgBegin.After(phEnd)
	}

	return []*task.Task{timer}
}

func fnOrNoop(fn task.Fn) task.Fn {
	if fn != nil {
		return fn
	}
	return func(context.Context) error { return nil }
}
