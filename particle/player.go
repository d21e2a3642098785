package particle

import (
	"context"
	"strconv"
	"sync"

	"github.com/kwcore/engine/task"
)

// Player owns a sparse sequence of Primitive slots (spec §4.6: "holes for
// removed entries, no reallocation churn") and drives their per-frame
// kill/emit/update passes through a begin/worker/end task triple, mirroring
// resource.Manager's begin/worker/end shape (resource/manager.go) but over
// live primitives instead of pending loads.
type Player struct {
	mu      sync.RWMutex
	slots   []*Primitive // nil entries are holes left by Remove.
	elapsed float64
}

// NewPlayer returns an empty Player.
func NewPlayer() *Player { return &Player{} }

// Add inserts p into the first available hole, or appends, and returns the
// slot index to pass to Remove.
func (pl *Player) Add(p *Primitive) int {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	for i, s := range pl.slots {
		if s == nil {
			pl.slots[i] = p
			return i
		}
	}
	pl.slots = append(pl.slots, p)
	return len(pl.slots) - 1
}

// Remove clears slot i, leaving a hole.
func (pl *Player) Remove(i int) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if i >= 0 && i < len(pl.slots) {
		pl.slots[i] = nil
	}
}

// SetElapsed records the frame's delta time for the next CreateTasks begin
// task to hand to every worker.
func (pl *Player) SetElapsed(dt float64) { pl.elapsed = dt }

// CreateTasks allocates the player's begin/end task pair for this frame,
// per spec §4.6: begin enqueues one worker task per occupied slot, under a
// shared lock, each feeding into end.
func (pl *Player) CreateTasks() (begin, end *task.Task) {
	end = task.NoopTask("particle-player-end")
	begin = task.NewTask("particle-player-begin", func(ctx context.Context) error {
		pl.mu.RLock()
		elapsed := pl.elapsed
		slots := make([]*Primitive, len(pl.slots))
		copy(slots, pl.slots)
		pl.mu.RUnlock()

		task.ReserveOutput(end)
		for i, p := range slots {
			if p == nil {
				continue
			}
			p := p
			worker := task.NewTask("particle-player-step:"+strconv.Itoa(i), func(context.Context) error {
				p.Step(elapsed)
				return nil
			})
			task.Spawn(ctx, worker, end)
		}
		task.ReleaseOutput(ctx, end)
		return nil
	})
	return begin, end
}
