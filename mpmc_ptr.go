// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCPtr is a multi-producer multi-consumer queue for unsafe.Pointer
// values.
//
// Same sequence protocol as [MPMC], specialized to a word-sized
// payload. The pointer itself crosses the queue, never the pointee, so
// an object handed off through MPMCPtr is transferred exactly once
// with no copy. The producer must not touch the object after Enqueue.
//
// Vacated slots are cleared so the consumer holds the only live
// reference.
//
// Memory: n slots, one cache line per slot.
type MPMCPtr struct {
	_        pad
	head     cell // producers claim here
	tail     cell // consumers claim here
	buffer   []mpmcPtrSlot
	mask     uint64
	capacity uint64
}

type mpmcPtrSlot struct {
	seq  atomix.Uint64
	data unsafe.Pointer
	_    padWord // Pad to cache line
}

// NewMPMCPtr creates a new MPMC queue for unsafe.Pointer values.
// Capacity must be a power of two, at least 2; NewMPMCPtr panics
// otherwise.
func NewMPMCPtr(capacity int) *MPMCPtr {
	n := uint64(checkCapacity(capacity))
	q := &MPMCPtr{
		buffer:   make([]mpmcPtrSlot, n),
		mask:     n - 1,
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *MPMCPtr) Enqueue(elem unsafe.Pointer) error {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				slot.data = elem
				slot.seq.StoreRelease(head + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element from the queue.
// Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *MPMCPtr) Dequeue() (unsafe.Pointer, error) {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail+1)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				elem := slot.data
				slot.data = nil
				slot.seq.StoreRelease(tail + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			return nil, ErrWouldBlock
		}
		sw.Once()
	}
}

// Len returns an advisory snapshot of the element count.
func (q *MPMCPtr) Len() int {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	d := int64(head - tail)
	if d < 0 {
		return 0
	}
	return int(d)
}

// IsEmpty reports whether the queue appears empty. Advisory.
func (q *MPMCPtr) IsEmpty() bool {
	return q.head.LoadRelaxed() == q.tail.LoadRelaxed()
}

// Cap returns the queue capacity.
func (q *MPMCPtr) Cap() int {
	return int(q.capacity)
}
