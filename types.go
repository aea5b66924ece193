// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// Queue is the combined producer-consumer interface for a bounded FIFO
// queue.
//
// Both directions are non-blocking: an operation that cannot proceed
// returns ErrWouldBlock instead of waiting, and the caller decides
// whether to back off, drop, or escalate.
//
// Len is an advisory snapshot: under concurrent mutation the value is
// already stale when it returns. Use it for monitoring and heuristics,
// never for claiming capacity ("Len < Cap, so Enqueue will succeed" is
// a race).
//
// Example:
//
//	var q ringq.Queue[Order] = ringq.NewMPMC[Order](256)
//
//	order := Order{ID: 7}
//	if err := q.Enqueue(&order); err != nil {
//	    // full; shed load or retry with backoff
//	}
//
//	if next, err := q.Dequeue(); err == nil {
//	    process(next)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Len returns an advisory snapshot of the element count.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// Enqueue copies *elem into the queue; the pointer is a call-boundary
// optimization for large element types, and the queue never retains
// it. The caller may reuse the variable as soon as the call returns.
type Producer[T any] interface {
	// Enqueue copies *elem into the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock when full.
	//
	// Producer concurrency is a property of the concrete type:
	// Ring admits one producer (or externally serialized producers),
	// MPMC admits any number.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// Dequeue returns the element by value; DequeueInto writes it through
// a caller-supplied pointer, which avoids a second copy for large
// types. Both forms report ErrWouldBlock identically.
//
// For large types (>512 bytes), consider QueuePtr instead to avoid
// copy overhead entirely.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero value, ErrWouldBlock) when nothing is available:
	// the queue is empty, or, on Ring only, this consumer lost its
	// single claim attempt to a peer (see Ring docs). Any number of
	// consumers may call it on either queue type.
	Dequeue() (T, error)

	// DequeueInto removes an element and writes it to *elem
	// (non-blocking). *elem is untouched on failure.
	// Returns nil on success, ErrWouldBlock when nothing is
	// available.
	DequeueInto(elem *T) error
}

// QueueIndirect is the combined interface for indirect (uintptr)
// queues.
//
// QueueIndirect moves indices or handles instead of full objects, so
// the payload never crosses the queue at all; only a word does. That
// suits arena and pool designs where both sides already share the
// backing storage. See [SlotPool] for the canonical composition.
//
// Len is an advisory snapshot, as on [Queue].
//
// Example (index hand-off over shared storage):
//
//	arena := make([]Record, 128)
//	ready := ringq.NewMPMCIndirect(128)
//
//	// producer side fills a record, then publishes its index
//	arena[9] = decode(payload)
//	ready.Enqueue(9)
//
//	// consumer side
//	if i, err := ready.Dequeue(); err == nil {
//	    handle(&arena[i])
//	}
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect

	// Len returns an advisory snapshot of the element count.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// ProducerIndirect enqueues uintptr values (non-blocking).
type ProducerIndirect interface {
	// Enqueue adds a word-sized value to the queue.
	// Returns ErrWouldBlock when the queue is full.
	Enqueue(elem uintptr) error
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns the oldest value.
	// Returns (0, ErrWouldBlock) when the queue is empty.
	Dequeue() (uintptr, error)
}

// QueuePtr is the combined interface for unsafe.Pointer queues.
//
// QueuePtr moves pointers without copying payloads: the consumer
// receives the very pointer the producer enqueued, exactly once. This
// is the zero-copy hand-off form for objects too large or too stateful
// to copy.
//
// Ownership semantics: enqueueing transfers the object to the
// consumer side. The producer must not touch it afterwards; there is
// no other synchronization between the two sides.
//
// Len is an advisory snapshot, as on [Queue].
//
// Example:
//
//	q := ringq.NewMPMCPtr(512)
//
//	// producer
//	f := &Frame{Payload: buf}
//	if q.Enqueue(unsafe.Pointer(f)) == nil {
//	    f = nil // gone; the consumer owns it now
//	}
//
//	// consumer
//	if p, err := q.Dequeue(); err == nil {
//	    f := (*Frame)(p)
//	    write(f)
//	}
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr

	// Len returns an advisory snapshot of the element count.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking).
type ProducerPtr interface {
	// Enqueue adds a pointer to the queue, transferring ownership
	// of the pointee. Returns ErrWouldBlock when the queue is full;
	// on failure ownership stays with the caller.
	Enqueue(elem unsafe.Pointer) error
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns the oldest pointer, transferring
	// ownership of the pointee to the caller.
	// Returns (nil, ErrWouldBlock) when the queue is empty.
	Dequeue() (unsafe.Pointer, error)
}
