// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed right now.
//
// For Enqueue: the queue is full (backpressure).
// For Dequeue: the queue is empty, or, on [Ring] only, this consumer
// lost its single claim attempt to a peer. The two cases are
// indistinguishable on purpose; both mean "nothing for you this call".
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// owns the retry policy (backoff, yield, or giving up).
//
// The value aliases [iox.ErrWouldBlock], so errors.Is matches across
// packages that share the iox taxonomy.
//
// Example (consumer loop with adaptive backoff):
//
//	backoff := iox.Backoff{}
//	for running {
//	    elem, err := q.Dequeue()
//	    if ringq.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    handle(elem)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err means the operation could not
// proceed right now. Wrapped errors match via [iox.IsWouldBlock].
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err carries control flow meaning rather
// than a failure, per [iox.IsSemantic]. Note that nil is not semantic.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err leaves the caller in a healthy
// state: true for nil and for ErrWouldBlock, per [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
