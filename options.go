// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Options holds the declared constraints a Builder selects a queue
// design from.
type Options struct {
	// Producer constraint (determines queue type)
	singleProducer bool

	// Capacity (must be a power of two, at least 2)
	capacity int
}

// Builder constructs queues from declared constraints.
//
// The builder selects the algorithm from the declared producer
// constraint: the cheap cursor-only ring requires a single producer,
// and the builder is the API that makes callers state that fact.
// Without the constraint, the sequence-counted MPMC is returned.
//
// Example:
//
//	// single dispatcher feeding workers
//	work := ringq.BuildRing[Task](ringq.New(512).SingleProducer())
//
//	// general purpose, any goroutine may enqueue
//	jobs := ringq.BuildMPMC[Job](ringq.New(2048))
type Builder struct {
	opts Options
}

// New starts a builder for a queue of the given capacity.
//
// Capacity must be a power of two, at least 2; New panics otherwise.
// It is never rounded: a miscounted capacity is a programming error,
// not something to adjust silently.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: checkCapacity(capacity)}}
}

// SingleProducer declares that exactly one goroutine will enqueue.
// Enables the cursor-only ring, whose enqueue path performs no claim
// and is unsafe with concurrent producers.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// Build returns a Queue[T] selected from the builder's constraints.
//
// Algorithm selection:
//
//	SingleProducer → Ring (cursor-only, single-shot consumer CAS)
//	otherwise      → MPMC (per-slot sequence protocol)
//
// BuildRing and BuildMPMC return the concrete types when the caller
// wants the full method set (IsFull exists on Ring only).
func Build[T any](b *Builder) Queue[T] {
	if b.opts.singleProducer {
		return NewRing[T](b.opts.capacity)
	}
	return NewMPMC[T](b.opts.capacity)
}

// BuildRing returns the concrete Ring the single-producer constraint
// selects. Panics if the builder lacks SingleProducer(): the ring is
// only correct under that constraint.
func BuildRing[T any](b *Builder) *Ring[T] {
	if !b.opts.singleProducer {
		panic("ringq: BuildRing requires SingleProducer()")
	}
	return NewRing[T](b.opts.capacity)
}

// BuildMPMC returns the concrete MPMC queue. Panics if the builder
// has the single-producer constraint set; use BuildRing to get the
// queue that constraint selects.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.singleProducer {
		panic("ringq: BuildMPMC requires no constraints")
	}
	return NewMPMC[T](b.opts.capacity)
}

// BuildPtr returns a QueuePtr carrying unsafe.Pointer values.
//
// Algorithm selection:
//
//	SingleProducer → RingPtr
//	otherwise      → MPMCPtr
func (b *Builder) BuildPtr() QueuePtr {
	if b.opts.singleProducer {
		return NewRingPtr(b.opts.capacity)
	}
	return NewMPMCPtr(b.opts.capacity)
}

// BuildIndirect returns a QueueIndirect carrying uintptr values.
//
// There is no single-producer indirect specialization; the sequence
// queue is returned for every configuration. It is safe, just not
// cheaper, under a single producer.
func (b *Builder) BuildIndirect() QueueIndirect {
	return NewMPMCIndirect(b.opts.capacity)
}

// checkCapacity validates a queue capacity and returns it.
//
// Power of two keeps index mapping at a single mask. Capacity 1 is
// rejected along with zero: with one slot the published sequence of
// the current lap equals the free sequence of the next, and a producer
// could reclaim a slot that was never consumed.
func checkCapacity(capacity int) int {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("ringq: capacity must be a power of two, at least 2")
	}
	return capacity
}
