// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is a full cache line of padding to prevent false sharing.
type pad [CacheLineSize]byte

// padShort is padding to fill a cache line after an 8-byte field.
type padShort [CacheLineSize - 8]byte

// padWord is padding to fill a cache line after an 8-byte field plus a
// word-sized payload.
type padWord [CacheLineSize - 8 - ptrSize]byte

// cell is an atomic cursor padded to occupy exactly one cache line.
//
// Every independently mutated cursor lives in its own cell so that
// producer-side and consumer-side cursor traffic never share a
// coherence unit. The atomic is embedded, so cells expose the full
// ordered load/store/CAS surface of [atomix.Uint64].
type cell struct {
	atomix.Uint64
	_ padShort
}
