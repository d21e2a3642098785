package render

import (
	"context"

	"github.com/kwcore/engine/task"
)

// Pass names one post-process stage in the fixed pipeline order spec §4.8
// wires between frame-graph.acquire and frame-graph.present.
type Pass string

const (
	PassDownsampleBloom Pass = "downsample-bloom"
	PassUpsampleBloom   Pass = "upsample-bloom"
	PassTonemap         Pass = "tonemap"
	PassFXAA            Pass = "fxaa"
	PassEmission        Pass = "emission"
	PassConvolution     Pass = "convolution"
	PassImgui           Pass = "imgui"
)

// Passes is the fixed per-frame post-process order.
var Passes = []Pass{
	PassDownsampleBloom,
	PassUpsampleBloom,
	PassTonemap,
	PassFXAA,
	PassEmission,
	PassConvolution,
	PassImgui,
}

// FrameGraph is the opaque bridge to a real renderer's frame graph (spec
// §4.8). Acquire obtains this frame's target images; RunPass executes one
// named pass; Present submits the frame. Nothing in this module implements
// a frame graph; a GPU binding supplies one.
type FrameGraph interface {
	Acquire() error
	RunPass(p Pass) error
	Present() error
}

// CreateTasks assembles spec §4.8's tail of the per-frame task graph:
// frame-graph.acquire -> one task per Pass, in order -> frame-graph.present.
// imgui is documented single-threaded and must run before any frame-graph
// task (spec §4.8); that ordering is the caller's responsibility via the
// returned begin task's own input wiring, not this function's.
func CreateTasks(fg FrameGraph, passes []Pass) (begin, end *task.Task) {
	begin = task.NewTask("frame-graph-acquire", func(ctx context.Context) error {
		return fg.Acquire()
	})
	prev := begin
	for _, p := range passes {
		p := p
		t := task.NewTask("frame-graph-pass:"+string(p), func(ctx context.Context) error {
			return fg.RunPass(p)
		}).After(prev)
		prev = t
	}
	end = task.NewTask("frame-graph-present", func(ctx context.Context) error {
		return fg.Present()
	}).After(prev)
	return begin, end
}
