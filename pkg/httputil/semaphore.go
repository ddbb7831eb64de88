package httputil

import (
	"context"
	"sync/atomic"
)

// Semaphore bounds the number of in-flight background deliveries. Callback
// posts are fire-and-forget, so without a bound a slow evaluator endpoint
// would let goroutines pile up without limit.
type Semaphore struct {
	slots   chan struct{}
	dropped atomic.Int64
}

// NewSemaphore creates a semaphore with the given number of slots.
func NewSemaphore(capacity int) *Semaphore {
	if capacity <= 0 {
		capacity = 100
	}
	return &Semaphore{
		slots: make(chan struct{}, capacity),
	}
}

// TryAcquire takes a slot without blocking. A false return means the
// operation should be dropped rather than queued.
func (s *Semaphore) TryAcquire() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Acquire blocks for a slot until the context is cancelled. For callers
// that cannot tolerate drops.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot taken by TryAcquire or Acquire. Releasing an
// unacquired semaphore is a no-op rather than a panic.
func (s *Semaphore) Release() {
	select {
	case <-s.slots:
	default:
	}
}

// InUse returns how many slots are currently held.
func (s *Semaphore) InUse() int {
	return len(s.slots)
}

// Capacity returns the total slot count.
func (s *Semaphore) Capacity() int {
	return cap(s.slots)
}

// DroppedCount returns how many TryAcquire calls found the semaphore full.
// Sustained growth here means the callback endpoint cannot keep up.
func (s *Semaphore) DroppedCount() int64 {
	return s.dropped.Load()
}
