package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResource struct {
	loaded bool
}

func (f *fakeResource) IsLoaded() bool { return f.loaded }

type fakeListener struct {
	calls *int
}

func (l *fakeListener) OnLoaded(r *fakeResource) { *l.calls++ }

func TestSubscribeOnLoadedResourceFiresImmediately(t *testing.T) {
	r := &fakeResource{loaded: true}
	n := New[*fakeResource, *fakeListener]()
	calls := 0
	n.Subscribe(r, &fakeListener{calls: &calls})
	assert.Equal(t, 1, calls, "listener should fire exactly once, synchronously")
}

func TestNotifyFiresAllSubscribersOnceAndClears(t *testing.T) {
	r := &fakeResource{loaded: false}
	n := New[*fakeResource, *fakeListener]()
	c1, c2 := 0, 0
	n.Subscribe(r, &fakeListener{calls: &c1})
	n.Subscribe(r, &fakeListener{calls: &c2})

	r.loaded = true
	n.Notify(r)

	assert.Equal(t, 1, c1)
	assert.Equal(t, 1, c2)
	assert.Equal(t, 0, n.Pending(r), "entry should be empty after notify")
}

func TestSubscribeAfterNotifyTakesFastPath(t *testing.T) {
	r := &fakeResource{loaded: false}
	n := New[*fakeResource, *fakeListener]()
	r.loaded = true
	n.Notify(r) // nothing subscribed yet, so this is a no-op; r.IsLoaded() alone selects the fast path.

	calls := 0
	n.Subscribe(r, &fakeListener{calls: &calls})
	assert.Equal(t, 1, calls)
}

func TestUnsubscribeRemovesByIdentity(t *testing.T) {
	r := &fakeResource{loaded: false}
	n := New[*fakeResource, *fakeListener]()
	c1, c2 := 0, 0
	l1 := &fakeListener{calls: &c1}
	l2 := &fakeListener{calls: &c2}
	n.Subscribe(r, l1)
	n.Subscribe(r, l2)
	n.Unsubscribe(r, l1)

	r.loaded = true
	n.Notify(r)
	assert.Equal(t, 0, c1, "unsubscribed listener must not fire")
	assert.Equal(t, 1, c2)
}

func TestRecursiveNotifierAllowsReentrantSubscribeOnSameNotifier(t *testing.T) {
	rA := &fakeResource{loaded: false}
	rB := &fakeResource{loaded: false} // unloaded: forces Subscribe to take the locking path.

	n := NewRecursive[*fakeResource, Listener[*fakeResource]]()
	reentrantCalls := 0
	reentrant := &fakeListener{calls: &reentrantCalls}

	// listenerA re-enters n itself, subscribing rB, from within n's own
	// notify fan-out over rA -- this is exactly the pattern spec §4.2/§9
	// calls out for the container-prototype notifier and must not deadlock.
	done := make(chan struct{})
	listenerA := reentrantSubscriber{
		fn: func() {
			n.Subscribe(rB, reentrant)
			close(done)
		},
	}
	n.Subscribe(rA, listenerA)

	rA.loaded = true
	n.Notify(rA)
	<-done
	assert.Equal(t, 0, reentrantCalls, "rB is still unloaded, so reentrant subscribe should only queue")

	rB.loaded = true
	n.Notify(rB)
	assert.Equal(t, 1, reentrantCalls)
}

type reentrantSubscriber struct {
	fn func()
}

func (r reentrantSubscriber) OnLoaded(*fakeResource) { r.fn() }
