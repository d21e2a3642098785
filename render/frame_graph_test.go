package render

import (
	"context"
	"testing"

	"github.com/kwcore/engine/task"
)

type fakeFrameGraph struct {
	calls []string
}

func (f *fakeFrameGraph) Acquire() error {
	f.calls = append(f.calls, "acquire")
	return nil
}

func (f *fakeFrameGraph) RunPass(p Pass) error {
	f.calls = append(f.calls, "pass:"+string(p))
	return nil
}

func (f *fakeFrameGraph) Present() error {
	f.calls = append(f.calls, "present")
	return nil
}

func TestCreateTasksRunsPassesInOrderBetweenAcquireAndPresent(t *testing.T) {
	fg := &fakeFrameGraph{}
	begin, _ := CreateTasks(fg, []Pass{PassDownsampleBloom, PassUpsampleBloom, PassTonemap})

	sched := task.NewScheduler(4)
	if err := sched.Run(context.Background(), begin); err != nil {
		t.Fatalf("scheduler run: %v", err)
	}

	want := []string{"acquire", "pass:" + string(PassDownsampleBloom), "pass:" + string(PassUpsampleBloom), "pass:" + string(PassTonemap), "present"}
	if len(fg.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fg.calls, want)
	}
	for i, c := range want {
		if fg.calls[i] != c {
			t.Fatalf("calls[%d] = %q, want %q (full: %v)", i, fg.calls[i], c, fg.calls)
		}
	}
}

func TestCreateTasksWithNoPassesStillAcquiresAndPresents(t *testing.T) {
	fg := &fakeFrameGraph{}
	begin, _ := CreateTasks(fg, nil)

	sched := task.NewScheduler(2)
	if err := sched.Run(context.Background(), begin); err != nil {
		t.Fatalf("scheduler run: %v", err)
	}
	if len(fg.calls) != 2 || fg.calls[0] != "acquire" || fg.calls[1] != "present" {
		t.Fatalf("calls = %v, want [acquire present]", fg.calls)
	}
}
