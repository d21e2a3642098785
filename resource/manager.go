// Package resource implements the generic resource-manager template of
// spec §4.3: a path -> handle map guarded by an RW-lock, a pending queue
// drained by a per-frame begin/end task pair, and refcount-based eviction
// deferred by one frame. Concrete managers (geometry and material in
// render, animation in anim, heightfield, and container prototype in this
// package) are thin wrappers around Manager[T] that supply a Loader.
package resource

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kwcore/engine/notify"
	"github.com/kwcore/engine/task"
)

// Loader parses the file at path into a fresh T. Manager calls it from a
// worker task, never while holding its own lock.
type Loader[T any] func(path string) (T, error)

// Handle is what load(path) hands back: a stable identity for a resource
// that may not have finished loading yet. The manager publishes into
// target in place once the worker finishes, then notifies.
type Handle[T any] struct {
	path string

	mu       sync.RWMutex
	loaded   bool
	target   T
	loadErr  error
	refcount int32 // starts at 1: the manager's own map entry holds one reference.
}

// Path returns the handle's resource path ("" for a null handle).
func (h *Handle[T]) Path() string { return h.path }

// IsLoaded satisfies notify.Resource: true once the worker task has
// published into target, successfully or not (a failed parse still
// "completes" the load for notification purposes; callers check Err).
func (h *Handle[T]) IsLoaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loaded
}

// Err returns the worker's parse error, if loading failed.
func (h *Handle[T]) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loadErr
}

// Get returns a pointer to the loaded target. Callers must not call Get
// before IsLoaded() (or before subscribing via the manager's Notifier).
func (h *Handle[T]) Get() *T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return &h.target
}

// Retain increments h's reference count. Call this when user code intends
// to hold the handle across frame boundaries; Release must be paired with
// it. A handle never retained beyond the manager's own reference is
// eligible for eviction at the next begin task.
func (h *Handle[T]) Retain() {
	h.mu.Lock()
	h.refcount++
	h.mu.Unlock()
}

// Release decrements h's reference count.
func (h *Handle[T]) Release() {
	h.mu.Lock()
	h.refcount--
	h.mu.Unlock()
}

func (h *Handle[T]) refs() int32 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.refcount
}

func (h *Handle[T]) publish(v T, err error) {
	h.mu.Lock()
	h.target = v
	h.loadErr = err
	h.loaded = true
	h.mu.Unlock()
}

// Manager is the general template described in spec §4.3. It is safe for
// concurrent Load calls; CreateTasks' begin/end pair must run on the task
// scheduler's own goroutines once per frame.
type Manager[T any] struct {
	name string

	mu      sync.RWMutex
	byPath  map[string]*Handle[T]
	pending []*Handle[T]

	notifier *notify.Notifier[*Handle[T], notify.Listener[*Handle[T]]]
	load     Loader[T]
}

// NewManager returns a Manager named name (used only for logging) that
// parses resources with load.
func NewManager[T any](name string, load Loader[T]) *Manager[T] {
	return &Manager[T]{
		name:     name,
		byPath:   make(map[string]*Handle[T]),
		notifier: notify.New[*Handle[T], notify.Listener[*Handle[T]]](),
		load:     load,
	}
}

// NewManagerRecursive is NewManager, but backed by a notify.NewRecursive
// notifier. The container-prototype manager is the one caller that needs
// this: instantiating a loaded prototype subscribes its freshly-built
// primitives to other managers' notifiers from inside this manager's own
// Notify fan-out, and spec §4.2/§9 calls that pattern out by name.
func NewManagerRecursive[T any](name string, load Loader[T]) *Manager[T] {
	return &Manager[T]{
		name:     name,
		byPath:   make(map[string]*Handle[T]),
		notifier: notify.NewRecursive[*Handle[T], notify.Listener[*Handle[T]]](),
		load:     load,
	}
}

// Notifier exposes the manager's resource notifier so callers can subscribe
// to a handle's load completion without going through Load again.
func (m *Manager[T]) Notifier() *notify.Notifier[*Handle[T], notify.Listener[*Handle[T]]] {
	return m.notifier
}

// Load implements spec §4.3's load(path): empty path returns a null
// handle, an existing path returns the same *Handle every time, and a new
// path is queued for the next begin task.
func (m *Manager[T]) Load(path string) *Handle[T] {
	if path == "" {
		return &Handle[T]{}
	}
	m.mu.RLock()
	h, ok := m.byPath[path]
	m.mu.RUnlock()
	if ok {
		return h
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.byPath[path]; ok { // re-check: another goroutine may have won the race.
		return h
	}
	h = &Handle[T]{path: path, refcount: 1}
	m.byPath[path] = h
	m.pending = append(m.pending, h)
	return h
}

// CreateTasks allocates the manager's begin/end task pair for this frame,
// per spec §4.3. begin evicts handles the manager alone still holds, then
// fans pending loads out to worker tasks that all feed into end; worker
// tasks are spawned dynamically from inside begin's Fn (task.Spawn), since
// the pending set is only known once begin actually runs — tasks scheduled
// before begin may still call Load after CreateTasks was called for this
// frame.
func (m *Manager[T]) CreateTasks() (begin, end *task.Task) {
	end = task.NoopTask(m.name + "-end")
	begin = task.NewTask(m.name+"-begin", func(ctx context.Context) error {
		m.mu.Lock()
		for path, h := range m.byPath {
			if h.refs() <= 1 {
				delete(m.byPath, path)
			}
		}
		batch := m.pending
		m.pending = nil
		m.mu.Unlock()

		task.ReserveOutput(end)
		for _, h := range batch {
			h := h
			worker := task.NewTask(m.name+"-load:"+h.path, func(ctx context.Context) error {
				v, err := m.load(h.path)
				if err != nil {
					log.Error().Str("manager", m.name).Str("path", h.path).Err(err).Msg("resource load failed")
				}
				h.publish(v, err)
				m.notifier.Notify(h)
				return err
			})
			task.Spawn(ctx, worker, end)
		}
		task.ReleaseOutput(ctx, end)
		return nil
	})
	return begin, end
}
