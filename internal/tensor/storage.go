package tensor

import (
	"sync"
	"sync/atomic"
)

// storage is a reference-counted slab shared between tensors that alias
// the same data. Sharing is what makes Clone cheap; the last release
// drops the slab.
type storage[T DType] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // guards deallocation
}

// newStorage allocates a zero-filled slab with refCount = 1.
func newStorage[T DType](size int) *storage[T] {
	s := &storage[T]{
		data: make([]T, size),
	}
	s.refCount.Store(1)
	return s
}

// retain increments the reference count (for Clone operations).
func (s *storage[T]) retain() {
	s.refCount.Add(1)
}

// release decrements the reference count and drops the slab when it
// reaches 0.
func (s *storage[T]) release() {
	if s.refCount.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// isUnique reports whether exactly one tensor references the slab.
func (s *storage[T]) isUnique() bool {
	return s.refCount.Load() == 1
}
