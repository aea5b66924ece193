// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// RingPtr is a single-producer bounded FIFO buffer for unsafe.Pointer
// values. Useful for zero-copy handoff from one producing goroutine to
// consuming workers.
//
// The contract matches [Ring]: exactly one goroutine may call Enqueue,
// any number may call Dequeue, and a consumer that loses its single
// claim attempt reports ErrWouldBlock.
//
// A dequeued slot retains its pointer until a later enqueue overwrites
// it, so the referenced object stays reachable until then.
type RingPtr struct {
	_      pad
	head   cell // producer publishes here
	tail   cell // consumers claim here
	buffer []unsafe.Pointer
	mask   uint64
}

// NewRingPtr creates a new single-producer ring buffer for
// unsafe.Pointer values. Capacity must be a power of two, at least 2;
// NewRingPtr panics otherwise.
func NewRingPtr(capacity int) *RingPtr {
	n := uint64(checkCapacity(capacity))
	return &RingPtr{
		buffer: make([]unsafe.Pointer, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the buffer (single producer only).
// Returns ErrWouldBlock if the buffer is full.
func (q *RingPtr) Enqueue(elem unsafe.Pointer) error {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	if head-tail > q.mask {
		return ErrWouldBlock
	}

	// Bounds check eliminated: head&mask is always < len(buffer)
	// because mask = len(buffer)-1 and x&mask <= mask
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head&q.mask)*ptrSize)) = elem
	q.head.StoreRelease(head + 1)
	return nil
}

// Dequeue removes and returns an element from the buffer.
// Returns (nil, ErrWouldBlock) if the buffer is empty or this consumer
// lost its single claim attempt to a peer; callers loop externally.
func (q *RingPtr) Dequeue() (unsafe.Pointer, error) {
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadAcquire()
	if tail >= head {
		return nil, ErrWouldBlock
	}

	// Read before the claim; once the CAS lands the slot is the
	// producer's to overwrite. Bounds check eliminated as in Enqueue.
	elem := *(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail&q.mask)*ptrSize))
	if !q.tail.CompareAndSwapAcqRel(tail, tail+1) {
		return nil, ErrWouldBlock
	}
	return elem, nil
}

// Len returns an advisory snapshot of the element count.
func (q *RingPtr) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	d := int64(head - tail)
	if d < 0 {
		return 0
	}
	return int(d)
}

// IsEmpty reports whether the buffer appears empty. Advisory.
func (q *RingPtr) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether the buffer appears full. Advisory.
func (q *RingPtr) IsFull() bool {
	return q.Len() >= q.Cap()
}

// Cap returns the buffer capacity.
func (q *RingPtr) Cap() int {
	return int(q.mask + 1)
}
