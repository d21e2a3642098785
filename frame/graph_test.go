package frame

import (
	"context"
	"testing"

	"github.com/kwcore/engine/particle"
	"github.com/kwcore/engine/render"
	"github.com/kwcore/engine/task"
)

type fakeFrameGraph struct{ ran []string }

func (f *fakeFrameGraph) Acquire() error       { f.ran = append(f.ran, "acquire"); return nil }
func (f *fakeFrameGraph) RunPass(p render.Pass) error {
	f.ran = append(f.ran, string(p))
	return nil
}
func (f *fakeFrameGraph) Present() error { f.ran = append(f.ran, "present"); return nil }

func TestGraphBuildRunsToCompletion(t *testing.T) {
	var order []string
	fg := &fakeFrameGraph{}
	g := &Graph{
		Timer: func(context.Context) error { order = append(order, "timer"); return nil },
		Imgui: func(context.Context) error { order = append(order, "imgui"); return nil },
		Player: particle.NewPlayer(),
		FrameGraph: fg,
		Passes:     []render.Pass{render.PassTonemap},
	}
	roots := g.Build()

	sched := task.NewScheduler(4)
	if err := sched.Run(context.Background(), roots...); err != nil {
		t.Fatalf("scheduler run: %v", err)
	}
	if len(fg.ran) == 0 || fg.ran[0] != "acquire" {
		t.Fatalf("frame graph did not run acquire first: %v", fg.ran)
	}
	if fg.ran[len(fg.ran)-1] != "present" {
		t.Fatalf("frame graph did not end with present: %v", fg.ran)
	}
}
