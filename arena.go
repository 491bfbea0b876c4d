package errchain

import "sync"

// arena hands out pointers to zeroed values of T in batches,
// so that constructing an error does not cost its own allocation.
//
// Values are carved from fixed-size slabs.
// A slab is never reused once exhausted:
// values taken from it stay valid for as long as they're referenced,
// and the slab is collected with the last of them.
// Slabs in progress are parked in a sync.Pool,
// so concurrent callers don't contend on a lock.
type arena[T any] struct {
	slabSize int
	slabs    sync.Pool // *slab[T]
}

func newArena[T any](slabSize int) *arena[T] {
	return &arena[T]{slabSize: slabSize}
}

// Take returns a pointer to a new zero value.
func (a *arena[T]) Take() *T {
	s, ok := a.slabs.Get().(*slab[T])
	if !ok || s.full() {
		s = &slab[T]{buf: make([]T, a.slabSize)}
	}

	v := s.next()
	if !s.full() {
		a.slabs.Put(s)
	}
	return v
}

// slab is a run of values in an arena,
// handed out in order.
type slab[T any] struct {
	buf []T
	idx int // index of the next value to hand out
}

func (s *slab[T]) full() bool {
	return s.idx >= len(s.buf)
}

func (s *slab[T]) next() *T {
	v := &s.buf[s.idx]
	s.idx++
	return v
}
