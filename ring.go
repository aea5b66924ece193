// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Ring is a single-producer bounded FIFO buffer.
//
// Ring tracks a producer cursor (head) and a consumer cursor (tail)
// with no per-slot sequencing, which keeps enqueue at two shared loads
// plus one store and dequeue at two shared loads plus one CAS.
//
// Contract: exactly one goroutine may call Enqueue, or producers must
// be serialized externally. The enqueue path claims no slot, so two
// concurrent producers can compute the same write position and corrupt
// a slot. Any number of goroutines may call Dequeue; see Dequeue for
// the single-attempt claim policy. Use MPMC when multiple producers
// are required.
//
// A dequeued slot is not cleared: after the claim CAS the slot may
// already belong to the producer again. The buffer therefore retains
// its copy of an element until a later enqueue overwrites the slot.
// For reference-holding payloads where prompt release matters, prefer
// MPMC, which clears vacated slots.
//
// Memory: n slots with no per-slot overhead.
type Ring[T any] struct {
	_      pad
	head   cell // producer publishes here
	tail   cell // consumers claim here
	buffer []T
	mask   uint64
}

// NewRing creates a new single-producer ring buffer.
// Capacity must be a power of two, at least 2; NewRing panics
// otherwise.
func NewRing[T any](capacity int) *Ring[T] {
	n := uint64(checkCapacity(capacity))
	return &Ring[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the buffer (single producer only).
// Returns ErrWouldBlock if the buffer is full. A full report near the
// capacity boundary may be momentarily stale while consumers advance;
// callers retry.
func (q *Ring[T]) Enqueue(elem *T) error {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	if head-tail > q.mask {
		return ErrWouldBlock
	}

	q.buffer[head&q.mask] = *elem
	q.head.StoreRelease(head + 1)
	return nil
}

// DequeueInto removes an element and writes it to *elem.
// *elem is untouched on failure.
//
// The claim is a single CAS on the consumer cursor. A consumer that
// loses the race to a peer returns ErrWouldBlock without retrying,
// indistinguishable from an empty buffer; callers loop externally.
// This bounds every call at one CAS.
func (q *Ring[T]) DequeueInto(elem *T) error {
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadAcquire()
	if tail >= head {
		return ErrWouldBlock
	}

	// The slot must be read before the claim: once the CAS lands, the
	// slot is free for the producer to overwrite. A lost claim
	// discards the local copy unobserved.
	v := q.buffer[tail&q.mask]
	if !q.tail.CompareAndSwapAcqRel(tail, tail+1) {
		return ErrWouldBlock
	}
	*elem = v
	return nil
}

// Dequeue removes and returns an element from the buffer.
// Returns (zero-value, ErrWouldBlock) if the buffer is empty or the
// claim was lost; see DequeueInto.
func (q *Ring[T]) Dequeue() (T, error) {
	var elem T
	err := q.DequeueInto(&elem)
	return elem, err
}

// Len returns an advisory snapshot of the element count.
// Under concurrent mutation the value is stale as soon as it returns.
func (q *Ring[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	d := int64(head - tail)
	if d < 0 {
		return 0
	}
	return int(d)
}

// IsEmpty reports whether the buffer appears empty. Advisory.
func (q *Ring[T]) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether the buffer appears full. Advisory.
func (q *Ring[T]) IsFull() bool {
	return q.Len() >= q.Cap()
}

// Cap returns the buffer capacity.
func (q *Ring[T]) Cap() int {
	return int(q.mask + 1)
}
