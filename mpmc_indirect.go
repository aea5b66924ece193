// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCIndirect is a multi-producer multi-consumer queue for uintptr
// values.
//
// Same sequence protocol as [MPMC], specialized to a word-sized
// payload. Intended for indices and handles rather than addresses;
// the value carries no reference, so slots are not cleared on dequeue.
// [SlotPool] builds its free list on this type.
//
// Memory: n slots, one cache line per slot.
type MPMCIndirect struct {
	_        pad
	head     cell // producers claim here
	tail     cell // consumers claim here
	buffer   []mpmcIndirectSlot
	mask     uint64
	capacity uint64
}

type mpmcIndirectSlot struct {
	seq  atomix.Uint64
	data uintptr
	_    padWord // Pad to cache line
}

// NewMPMCIndirect creates a new MPMC queue for uintptr values.
// Capacity must be a power of two, at least 2; NewMPMCIndirect panics
// otherwise.
func NewMPMCIndirect(capacity int) *MPMCIndirect {
	n := uint64(checkCapacity(capacity))
	q := &MPMCIndirect{
		buffer:   make([]mpmcIndirectSlot, n),
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
func (q *MPMCIndirect) Enqueue(elem uintptr) error {
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
// Returns (0, ErrWouldBlock) if the queue is empty.
func (q *MPMCIndirect) Dequeue() (uintptr, error) {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail+1)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				elem := slot.data
				slot.seq.StoreRelease(tail + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			return 0, ErrWouldBlock
		}
		sw.Once()
	}
}

// Len returns an advisory snapshot of the element count.
func (q *MPMCIndirect) Len() int {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	d := int64(head - tail)
	if d < 0 {
		return 0
	}
	return int(d)
}

// IsEmpty reports whether the queue appears empty. Advisory.
func (q *MPMCIndirect) IsEmpty() bool {
	return q.head.LoadRelaxed() == q.tail.LoadRelaxed()
}

// Cap returns the queue capacity.
func (q *MPMCIndirect) Cap() int {
	return int(q.capacity)
}
