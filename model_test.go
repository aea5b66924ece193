// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/valyala/fastrand"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Randomized Model Tests
//
// A single goroutine drives a queue with a seeded random stream of
// enqueue and dequeue attempts while a plain slice mirrors the expected
// state. Every operation result, every dequeued value and every size
// report must agree with the model. Random op boundaries exercise
// wrap-around at every possible cursor offset, not just full/drain
// cycles.
// =============================================================================

const modelSteps = 100000

// TestRingRandomizedModel checks Ring against a slice model.
func TestRingRandomizedModel(t *testing.T) {
	for _, capacity := range []int{2, 4, 16, 64} {
		t.Run(fmt.Sprintf("cap%d", capacity), func(t *testing.T) {
			q := ringq.NewRing[int](capacity)
			model := make([]int, 0, capacity)
			var rng fastrand.RNG
			rng.Seed(uint32(capacity))

			next := 0
			for step := range modelSteps {
				if rng.Uint32n(2) == 0 {
					v := next
					err := q.Enqueue(&v)
					if len(model) == capacity {
						if !errors.Is(err, ringq.ErrWouldBlock) {
							t.Fatalf("step %d: Enqueue on full: got %v, want ErrWouldBlock", step, err)
						}
					} else {
						if err != nil {
							t.Fatalf("step %d: Enqueue: %v", step, err)
						}
						model = append(model, v)
						next++
					}
				} else {
					v, err := q.Dequeue()
					if len(model) == 0 {
						if !errors.Is(err, ringq.ErrWouldBlock) {
							t.Fatalf("step %d: Dequeue on empty: got %v, want ErrWouldBlock", step, err)
						}
					} else {
						if err != nil {
							t.Fatalf("step %d: Dequeue: %v", step, err)
						}
						if v != model[0] {
							t.Fatalf("step %d: Dequeue: got %d, want %d", step, v, model[0])
						}
						model = model[1:]
					}
				}

				if got := q.Len(); got != len(model) {
					t.Fatalf("step %d: Len: got %d, want %d", step, got, len(model))
				}
				if got := q.IsEmpty(); got != (len(model) == 0) {
					t.Fatalf("step %d: IsEmpty: got %v, want %v", step, got, len(model) == 0)
				}
				if got := q.IsFull(); got != (len(model) == capacity) {
					t.Fatalf("step %d: IsFull: got %v, want %v", step, got, len(model) == capacity)
				}
			}
		})
	}
}

// TestMPMCRandomizedModel checks MPMC against a slice model.
func TestMPMCRandomizedModel(t *testing.T) {
	for _, capacity := range []int{2, 4, 16, 64} {
		t.Run(fmt.Sprintf("cap%d", capacity), func(t *testing.T) {
			q := ringq.NewMPMC[int](capacity)
			model := make([]int, 0, capacity)
			var rng fastrand.RNG
			rng.Seed(uint32(capacity))

			next := 0
			for step := range modelSteps {
				if rng.Uint32n(2) == 0 {
					v := next
					err := q.Enqueue(&v)
					if len(model) == capacity {
						if !errors.Is(err, ringq.ErrWouldBlock) {
							t.Fatalf("step %d: Enqueue on full: got %v, want ErrWouldBlock", step, err)
						}
					} else {
						if err != nil {
							t.Fatalf("step %d: Enqueue: %v", step, err)
						}
						model = append(model, v)
						next++
					}
				} else {
					v, err := q.Dequeue()
					if len(model) == 0 {
						if !errors.Is(err, ringq.ErrWouldBlock) {
							t.Fatalf("step %d: Dequeue on empty: got %v, want ErrWouldBlock", step, err)
						}
					} else {
						if err != nil {
							t.Fatalf("step %d: Dequeue: %v", step, err)
						}
						if v != model[0] {
							t.Fatalf("step %d: Dequeue: got %d, want %d", step, v, model[0])
						}
						model = model[1:]
					}
				}

				if got := q.Len(); got != len(model) {
					t.Fatalf("step %d: Len: got %d, want %d", step, got, len(model))
				}
				if got := q.IsEmpty(); got != (len(model) == 0) {
					t.Fatalf("step %d: IsEmpty: got %v, want %v", step, got, len(model) == 0)
				}
			}
		})
	}
}

// TestMPMCIndirectRandomizedModel checks MPMCIndirect against a slice
// model, including the mixed DequeueInto-free surface (uintptr values
// come back by return only).
func TestMPMCIndirectRandomizedModel(t *testing.T) {
	const capacity = 16
	q := ringq.NewMPMCIndirect(capacity)
	model := make([]uintptr, 0, capacity)
	var rng fastrand.RNG
	rng.Seed(7)

	next := uintptr(0)
	for step := range modelSteps {
		if rng.Uint32n(2) == 0 {
			err := q.Enqueue(next)
			if len(model) == capacity {
				if !errors.Is(err, ringq.ErrWouldBlock) {
					t.Fatalf("step %d: Enqueue on full: got %v, want ErrWouldBlock", step, err)
				}
			} else {
				if err != nil {
					t.Fatalf("step %d: Enqueue: %v", step, err)
				}
				model = append(model, next)
				next++
			}
		} else {
			v, err := q.Dequeue()
			if len(model) == 0 {
				if !errors.Is(err, ringq.ErrWouldBlock) {
					t.Fatalf("step %d: Dequeue on empty: got %v, want ErrWouldBlock", step, err)
				}
			} else {
				if err != nil {
					t.Fatalf("step %d: Dequeue: %v", step, err)
				}
				if v != model[0] {
					t.Fatalf("step %d: Dequeue: got %d, want %d", step, v, model[0])
				}
				model = model[1:]
			}
		}

		if got := q.Len(); got != len(model) {
			t.Fatalf("step %d: Len: got %d, want %d", step, got, len(model))
		}
	}
}

// TestRingRandomizedDequeueInto drives the out-param form through the
// same model harness.
func TestRingRandomizedDequeueInto(t *testing.T) {
	const capacity = 8
	q := ringq.NewRing[int](capacity)
	model := make([]int, 0, capacity)
	var rng fastrand.RNG
	rng.Seed(3)

	next := 0
	for step := range modelSteps {
		if rng.Uint32n(2) == 0 {
			v := next
			if err := q.Enqueue(&v); err == nil {
				model = append(model, v)
				next++
			} else if len(model) != capacity {
				t.Fatalf("step %d: Enqueue rejected below capacity: %v", step, err)
			}
		} else {
			sentinel := -1
			err := q.DequeueInto(&sentinel)
			if len(model) == 0 {
				if !errors.Is(err, ringq.ErrWouldBlock) {
					t.Fatalf("step %d: DequeueInto on empty: got %v, want ErrWouldBlock", step, err)
				}
				if sentinel != -1 {
					t.Fatalf("step %d: DequeueInto on empty wrote destination: %d", step, sentinel)
				}
			} else {
				if err != nil {
					t.Fatalf("step %d: DequeueInto: %v", step, err)
				}
				if sentinel != model[0] {
					t.Fatalf("step %d: DequeueInto: got %d, want %d", step, sentinel, model[0])
				}
				model = model[1:]
			}
		}
	}
}
