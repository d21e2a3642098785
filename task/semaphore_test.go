package task

import "testing"

func TestSemaphoreTryAcquire(t *testing.T) {
	s := NewSemaphore(1)
	if !s.TryAcquire() {
		t.Fatalf("expected first TryAcquire to succeed")
	}
	if s.TryAcquire() {
		t.Fatalf("expected second TryAcquire to fail while the one slot is held")
	}
	s.Release()
	if !s.TryAcquire() {
		t.Fatalf("expected TryAcquire to succeed after Release")
	}
}
