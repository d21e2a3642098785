package notify

import "sync"

// recursiveMutex allows the same goroutine to Lock() while it already
// holds the lock, unlike sync.Mutex. It exists solely to back
// NewRecursive's re-entrant Notifier and should not be reached for by new
// code outside this package.
type recursiveMutex struct {
	mu    sync.Mutex
	owner int64 // goroutine id currently holding the lock, 0 if unlocked.
	depth int
	cond  *sync.Cond
}

func newRecursiveMutex() *recursiveMutex {
	m := &recursiveMutex{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *recursiveMutex) Lock() {
	gid := goroutineID()
	m.mu.Lock()
	for m.owner != 0 && m.owner != gid {
		m.cond.Wait()
	}
	m.owner = gid
	m.depth++
	m.mu.Unlock()
}

func (m *recursiveMutex) Unlock() {
	m.mu.Lock()
	m.depth--
	if m.depth == 0 {
		m.owner = 0
		m.cond.Signal()
	}
	m.mu.Unlock()
}
