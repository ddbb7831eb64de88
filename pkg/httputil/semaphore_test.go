package httputil

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSemaphoreTryAcquire(t *testing.T) {
	s := NewSemaphore(2)

	if !s.TryAcquire() {
		t.Fatal("First acquire should succeed")
	}
	if !s.TryAcquire() {
		t.Fatal("Second acquire should succeed")
	}
	if s.TryAcquire() {
		t.Error("Third acquire should fail at capacity 2")
	}
	if s.DroppedCount() != 1 {
		t.Errorf("DroppedCount = %d, want 1", s.DroppedCount())
	}

	s.Release()
	if !s.TryAcquire() {
		t.Error("Acquire after release should succeed")
	}
}

func TestSemaphoreAcquireBlocks(t *testing.T) {
	s := NewSemaphore(1)
	if !s.TryAcquire() {
		t.Fatal("Setup acquire failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := s.Acquire(ctx); err == nil {
		t.Error("Acquire on a full semaphore should fail when context expires")
	}

	s.Release()
	if err := s.Acquire(context.Background()); err != nil {
		t.Errorf("Acquire with a free slot failed: %v", err)
	}
}

func TestSemaphoreReleaseWithoutAcquire(t *testing.T) {
	s := NewSemaphore(1)
	s.Release() // must not panic or create phantom slots
	if !s.TryAcquire() {
		t.Error("Acquire after spurious release should succeed")
	}
	if s.TryAcquire() {
		t.Error("Capacity must stay 1 after spurious release")
	}
}

func TestSemaphoreConcurrent(t *testing.T) {
	const capacity = 5
	s := NewSemaphore(capacity)

	var mu sync.Mutex
	cur, max := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !s.TryAcquire() {
				return
			}
			mu.Lock()
			cur++
			if cur > max {
				max = cur
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			cur--
			mu.Unlock()
			s.Release()
		}()
	}
	wg.Wait()

	if max > capacity {
		t.Errorf("Observed %d concurrent holders, capacity is %d", max, capacity)
	}
	if s.InUse() != 0 {
		t.Errorf("InUse = %d after all released", s.InUse())
	}
}

func TestSemaphoreAccessors(t *testing.T) {
	s := NewSemaphore(3)
	s.TryAcquire()
	s.TryAcquire()

	if s.Capacity() != 3 {
		t.Errorf("Capacity = %d", s.Capacity())
	}
	if s.InUse() != 2 {
		t.Errorf("InUse = %d", s.InUse())
	}
}

func TestSemaphoreDefaultCapacity(t *testing.T) {
	if s := NewSemaphore(0); s.Capacity() != 100 {
		t.Errorf("Capacity = %d, want default 100", s.Capacity())
	}
	if s := NewSemaphore(-5); s.Capacity() != 100 {
		t.Errorf("Capacity = %d, want default 100", s.Capacity())
	}
}
