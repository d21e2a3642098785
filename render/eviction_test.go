package render

import (
	"context"
	"os"
	"testing"

	"github.com/kwcore/engine/task"
)

// TestMaterialAndPipelineEvictionTiming is spec §8 scenario #6: load a
// material on frame 1, observe it loaded on frame 2, drop the user's
// handle, and observe the material evicted one frame later with its
// shared pipeline evicted one frame after that.
func TestMaterialAndPipelineEvictionTiming(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.md")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.WriteString("type: material\nname: rusty-metal\npipeline: lit-opaque\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()
	path := f.Name()

	mgr := NewMaterialManager()
	builds := 0
	cache := NewPipelineCache(func(key string) (*Pipeline, error) {
		builds++
		return &Pipeline{Key: key}, nil
	})

	runFrame := func() {
		begin, end := mgr.CreateTasks()
		sched := task.NewScheduler(2)
		if err := sched.Run(context.Background(), begin); err != nil {
			t.Fatalf("scheduler run: %v", err)
		}
		_ = end
	}

	// Frame 1: load.
	h := mgr.Load(path)
	h.Retain() // the "user handle" on top of the manager's own base reference.
	runFrame()
	if !h.IsLoaded() {
		t.Fatalf("material not loaded after frame 1")
	}

	// Frame 2: confirm loaded, start using its pipeline, then drop the
	// user handle.
	if h.Err() != nil {
		t.Fatalf("material load error: %v", h.Err())
	}
	key := (*h.Get()).PipelineKey
	if _, err := cache.Acquire(key); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	h.Release()

	// Frame 3: the manager's begin task now sees only its own base
	// reference and evicts the map entry — observable as Load(path)
	// afterward returning a fresh handle rather than h. Whatever is
	// watching the material's eviction drops the matching pipeline
	// reference in the same frame.
	runFrame()
	cache.Release(key)
	if fresh := mgr.Load(path); fresh == h {
		t.Fatalf("material handle survived frame 3's eviction pass")
	}

	// Frame 4: the pipeline cache's own deferred eviction removes the
	// now-unreferenced pipeline.
	cache.Evict()
	if builds != 1 {
		t.Fatalf("builds = %d, want 1 before re-acquiring", builds)
	}
	if _, err := cache.Acquire(key); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if builds != 2 {
		t.Fatalf("builds = %d, want 2 (pipeline was evicted and rebuilt)", builds)
	}
}
