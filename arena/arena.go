// Package arena provides bump/linear allocators with scoped reset points,
// used for per-frame transient task data (see spec §5, §9). Persistent
// data (resources, primitives, manager maps) is left to the Go garbage
// collector and never allocated from an Arena.
package arena

import (
	"fmt"
	"unsafe"

	"github.com/rs/zerolog/log"
)

// Mark is a scoped reset point returned by Arena.Mark and consumed by
// Arena.Reset. Marks are only valid for the Arena that produced them and
// must be used in stack order.
type Mark int

// Arena is a bump allocator over a fixed-size backing buffer. Alloc never
// grows the buffer: a request that would overflow the buffer is a fatal
// capacity-overflow error per spec §7, since arenas are sized at startup.
type Arena struct {
	name string
	buf  []byte
	off  int

	peak int // high-water mark, for Stats.
}

// New creates an Arena with the given fixed capacity in bytes.
func New(name string, capacity int) *Arena {
	if capacity <= 0 {
		panic(fmt.Sprintf("arena %q: non-positive capacity %d", name, capacity))
	}
	return &Arena{name: name, buf: make([]byte, capacity)}
}

// Mark returns a reset point at the arena's current offset.
func (a *Arena) Mark() Mark { return Mark(a.off) }

// Reset rewinds the arena back to a previously taken Mark, discarding
// everything allocated since. Reset(a.Mark()) at the top of each frame
// is the expected per-frame usage (spec §5 "frame-transient arena is
// reset at frame boundary in a scoped reset point").
func (a *Arena) Reset(m Mark) {
	if int(m) > a.off || m < 0 {
		panic(fmt.Sprintf("arena %q: invalid reset mark %d (offset %d)", a.name, m, a.off))
	}
	a.off = int(m)
}

// alloc reserves n bytes aligned to align (a power of two) and returns the
// backing slice. Fatal on capacity overflow, per spec §7.
func (a *Arena) alloc(n, align int) []byte {
	start := (a.off + align - 1) &^ (align - 1)
	end := start + n
	if end > len(a.buf) {
		log.Error().Str("arena", a.name).Int("requested", n).Int("capacity", len(a.buf)).
			Msg("arena capacity overflow")
		panic(fmt.Sprintf("arena %q: capacity overflow allocating %d bytes (capacity %d)", a.name, n, len(a.buf)))
	}
	a.off = end
	if a.off > a.peak {
		a.peak = a.off
	}
	return a.buf[start:end]
}

// Alloc reserves space for and returns a zero-valued *T backed by the
// arena. The pointer is only valid until the next Reset.
func Alloc[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	if size == 0 {
		return new(T) // zero-sized types need no arena space.
	}
	raw := a.alloc(size, align)
	p := (*T)(unsafe.Pointer(&raw[0]))
	*p = zero
	return p
}

// AllocSlice reserves space for n contiguous T values and returns a slice
// over them, analogous to Alloc but for array-shaped allocations (used by
// worker tasks building scratch buffers, spec §9 "arenas + indices").
func AllocSlice[T any](a *Arena, n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	raw := a.alloc(size*n, align)
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
}

// Stats reports per-reset allocator usage.
type Stats struct {
	Name     string
	Capacity int
	InUse    int // bytes allocated since the last Reset.
	Peak     int // high-water mark across the arena's lifetime.
}

// Stats returns the arena's current usage snapshot.
func (a *Arena) Stats() Stats {
	return Stats{Name: a.name, Capacity: len(a.buf), InUse: a.off, Peak: a.peak}
}
