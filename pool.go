// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// SlotPool is a fixed-size pool of reusable slots backed by an
// [MPMCIndirect] free list of slot indices.
//
// The arena is allocated once; Acquire and Release move indices, never
// values, so the pool is safe for any number of concurrent goroutines
// and performs no allocation after construction.
//
// A slot is owned exclusively by the caller between Acquire and
// Release. The pool never clears slot contents; the next owner sees
// whatever the previous owner left, so reset in the caller if that
// matters.
//
// Example:
//
//	pool := ringq.NewSlotPool[[4096]byte](256)
//
//	i, err := pool.Acquire()
//	if err != nil {
//	    // Pool exhausted - apply backpressure
//	}
//	buf := pool.Get(i)
//	// ... use buf ...
//	pool.Release(i)
type SlotPool[T any] struct {
	items []T
	free  *MPMCIndirect
}

// NewSlotPool creates a pool of capacity slots, all initially free.
// Capacity must be a power of two, at least 2; NewSlotPool panics
// otherwise.
func NewSlotPool[T any](capacity int) *SlotPool[T] {
	n := checkCapacity(capacity)
	p := &SlotPool[T]{
		items: make([]T, n),
		free:  NewMPMCIndirect(n),
	}

	// A fresh free list accepts exactly n indices.
	for i := 0; i < n; i++ {
		_ = p.free.Enqueue(uintptr(i))
	}

	return p
}

// Acquire claims a free slot and returns its index.
// Returns ErrWouldBlock when the pool is exhausted.
func (p *SlotPool[T]) Acquire() (int, error) {
	idx, err := p.free.Dequeue()
	if err != nil {
		return 0, err
	}
	return int(idx), nil
}

// Get returns the slot at index i. The pointer is valid for the
// lifetime of the pool; the caller may use it only while holding the
// slot.
func (p *SlotPool[T]) Get(i int) *T {
	return &p.items[i]
}

// Release returns a slot to the free list.
//
// Each acquired index must be released exactly once. With that
// discipline the free list always has room: the list, in-flight
// transfers, and callers together hold exactly Cap indices. Release
// panics when the list overflows, which only a double release can
// cause.
func (p *SlotPool[T]) Release(i int) {
	if err := p.free.Enqueue(uintptr(i)); err != nil {
		panic("ringq: release of slot that was not acquired")
	}
}

// Free returns an advisory snapshot of the free-slot count.
func (p *SlotPool[T]) Free() int {
	return p.free.Len()
}

// Cap returns the total slot count.
func (p *SlotPool[T]) Cap() int {
	return len(p.items)
}
