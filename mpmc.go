// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a bounded FIFO queue safe for any number of concurrent
// producers and consumers.
//
// Each slot carries its own atomic sequence number, initialized to the
// slot index. The cursors only nominate a candidate slot; the sequence
// is the admission gate. A producer claims position h when the slot's
// sequence equals h, then publishes by storing h+1. A consumer claims
// position t when the sequence equals t+1, then frees the slot for the
// next lap by storing t+n. Sequences strictly increase across laps, so
// a thread holding a stale cursor can never mistake a reused slot for
// the generation it originally observed.
//
// Both directions resolve to success or a definitive full/empty answer
// in a bounded number of retries: a retry happens only when another
// goroutine has already advanced past the observed position, so some
// goroutine always makes progress.
//
// Dequeued slots are cleared so that references die with the element.
//
// Memory: n slots, each padded out to at least a cache line.
type MPMC[T any] struct {
	_        pad
	head     cell // producers claim here
	tail     cell // consumers claim here
	buffer   []mpmcSlot[T]
	mask     uint64
	capacity uint64
}

type mpmcSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort // Pad to cache line
}

// NewMPMC creates a new multi-producer multi-consumer queue.
// Capacity must be a power of two, at least 2; NewMPMC panics
// otherwise.
func NewMPMC[T any](capacity int) *MPMC[T] {
	n := uint64(checkCapacity(capacity))
	q := &MPMC[T]{
		buffer:   make([]mpmcSlot[T], n),
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
func (q *MPMC[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				slot.data = *elem
				slot.seq.StoreRelease(head + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// DequeueInto removes an element and writes it to *elem.
// *elem is untouched on failure.
// Returns ErrWouldBlock if the queue is empty.
func (q *MPMC[T]) DequeueInto(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail+1)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				*elem = slot.data
				var zero T
				slot.data = zero
				slot.seq.StoreRelease(tail + q.capacity)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, error) {
	var elem T
	err := q.DequeueInto(&elem)
	return elem, err
}

// Len returns an advisory snapshot of the element count.
// A momentarily inverted cursor snapshot reads as 0.
func (q *MPMC[T]) Len() int {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	d := int64(head - tail)
	if d < 0 {
		return 0
	}
	return int(d)
}

// IsEmpty reports whether the queue appears empty. Advisory.
func (q *MPMC[T]) IsEmpty() bool {
	return q.head.LoadRelaxed() == q.tail.LoadRelaxed()
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}
