// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides fixed-capacity lock-free FIFO queues.
//
// The package offers two queue designs with different contracts:
//
//   - Ring: cursor-only bounded buffer, single producer, any number
//     of consumers
//   - MPMC: per-slot sequence protocol, any number of producers and
//     consumers
//
// # Quick Start
//
// Direct constructors pick the design explicitly:
//
//	q := ringq.NewRing[Event](1024)   // one producing goroutine
//	q := ringq.NewMPMC[Request](4096) // any number of producers
//
// Builder API selects the algorithm from declared constraints:
//
//	q := ringq.Build[Event](ringq.New(1024).SingleProducer()) // → Ring
//	q := ringq.Build[Event](ringq.New(1024))                  // → MPMC
//
// # Basic Usage
//
// Both designs share the same call surface:
//
//	q := ringq.NewMPMC[Sample](512)
//
//	s := Sample{Value: 3.9}
//	if err := q.Enqueue(&s); ringq.IsWouldBlock(err) {
//	    // full: shed, retry, or backoff
//	}
//
//	s, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // empty: nothing to do yet
//	}
//
//	// out-param form, skips the second copy on large types
//	var dst Sample
//	err = q.DequeueInto(&dst)
//
// # Choosing a Design
//
// Ring pays for nothing it does not need: no per-slot bookkeeping, an
// enqueue is two shared loads and a store. The price is its contract.
// The enqueue path claims no slot, so it is only correct with ONE
// producing goroutine (or external serialization); concurrent
// producers can compute the same write position and corrupt a slot.
// On the consumer side, any number of goroutines may dequeue, but each
// call makes a single claim attempt: losing the race to a peer reports
// ErrWouldBlock exactly like an empty buffer. Callers that need "empty
// means empty" must be the only consumer or drain with a retry loop.
//
// MPMC attaches an atomic sequence number to every slot. The sequence,
// not the cursor, admits a goroutine to a slot, which closes the
// multi-producer race and the ABA window at the cost of one extra
// atomic per slot per operation. Any mix of producers and consumers is
// safe, and full/empty answers are definitive at the time they are
// computed.
//
// When in doubt, use MPMC; reach for Ring when profiling shows the
// producer path matters and the topology guarantees a single writer.
//
// # Common Patterns
//
// Dispatch (Ring, one dispatcher feeding workers):
//
//	work := ringq.NewRing[Task](1024)
//
//	// dispatcher goroutine, the ring's one producer
//	go func() {
//	    backoff := iox.Backoff{}
//	    for t := range incoming {
//	        for work.Enqueue(&t) != nil {
//	            backoff.Wait() // downstream is saturated
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	// workers; ErrWouldBlock covers both "empty" and "lost the claim"
//	for range workers {
//	    go func() {
//	        backoff := iox.Backoff{}
//	        for {
//	            t, err := work.Dequeue()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            t.Execute()
//	        }
//	    }()
//	}
//
// Worker pool (MPMC, submit from anywhere):
//
//	jobs := ringq.NewMPMC[Job](4096)
//
//	// Submit is callable from any goroutine; a full pool surfaces
//	// as ErrWouldBlock and the caller owns the policy
//	func Submit(j Job) error {
//	    return jobs.Enqueue(&j)
//	}
//
//	for range workers {
//	    go func() {
//	        backoff := iox.Backoff{}
//	        for {
//	            j, err := jobs.Dequeue()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            j.Run()
//	        }
//	    }()
//	}
//
// Buffer reuse (SlotPool):
//
//	pool := ringq.NewSlotPool[[4096]byte](256)
//
//	i, err := pool.Acquire()
//	if err != nil {
//	    // Exhausted - apply backpressure
//	}
//	buf := pool.Get(i)
//	// ... fill and hand off buf ...
//	pool.Release(i)
//
// # Queue Variants
//
// Three payload flavors are available for each design where it makes
// sense:
//
//	Build[T]        - Generic type-safe queue for any type
//	BuildIndirect() - uintptr values (pool indices, handles)
//	BuildPtr()      - unsafe.Pointer (zero-copy pointer passing)
//
// The Ptr flavors transfer ownership: the producer enqueues a pointer
// and must not touch the object afterwards; the consumer receives the
// same pointer exactly once. This is the pattern for payloads that
// must not be copied.
//
//	frames := ringq.NewMPMCPtr(1024)
//
//	f := &Frame{Payload: buf}
//	if frames.Enqueue(unsafe.Pointer(f)) == nil {
//	    f = nil // the consumer side owns it now
//	}
//
//	if p, err := frames.Dequeue(); err == nil {
//	    write((*Frame)(p))
//	}
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when an operation cannot proceed. The
// error is sourced from [code.hybscloud.com/iox] so classification
// composes across the ecosystem:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// The iox taxonomy separates control flow from failure:
//
//	ringq.IsWouldBlock(err)  // full or empty
//	ringq.IsSemantic(err)    // control flow, not a failure
//	ringq.IsNonFailure(err)  // nil or would-block
//
// # Capacity and Length
//
// Capacity is fixed at construction and must be a power of two, at
// least 2. It is never rounded: a capacity the caller did not ask for
// hides sizing bugs, so construction panics instead.
//
//	q := ringq.NewMPMC[int](1024) // ok
//	q := ringq.NewMPMC[int](1000) // panics
//
// Len, IsEmpty, and IsFull are advisory snapshots. Under concurrent
// mutation the answer is stale by the time it returns; use these for
// monitoring and heuristics, never to claim capacity ("Len < Cap, so
// Enqueue will succeed" is a race).
//
// # Thread Safety
//
// All operations are safe within each design's access pattern:
//
//   - Ring/RingPtr: one producer goroutine, any number of consumers
//   - MPMC/MPMCPtr/MPMCIndirect: any number of producers and consumers
//   - SlotPool: any number of concurrent acquirers and releasers
//
// Violating the Ring producer constraint causes silent slot corruption,
// not an error. Queues must not be copied after first use.
//
// # Cache Lines
//
// Every independently mutated cursor occupies its own cache line so
// producer-side and consumer-side traffic never invalidate each other,
// and MPMC slots are padded to a line each. Padding is sized by
// [CacheLineSize], a compile-time constant: 64 bytes by default, 128
// with the cacheline128 build tag for parts that prefetch line pairs.
//
// # Race Detection
//
// Go's race detector tracks synchronization through explicit
// primitives (mutexes, channels) and same-variable atomics. These
// queues order payload access through acquire/release operations on
// separate atomics (a cursor or a slot sequence), a relationship the
// detector cannot observe, so concurrent runs of the generic variants
// report false positives by construction.
//
// Tests gate such scenarios on [RaceEnabled]. For algorithm-level
// verification use stress tests without the detector, or a model
// checker.
//
// # Dependencies
//
// Error taxonomy comes from [code.hybscloud.com/iox], every atomic
// access goes through [code.hybscloud.com/atomix] (explicit memory
// ordering per operation), and [code.hybscloud.com/spin] supplies the
// CPU pause between claim retries.
package ringq
