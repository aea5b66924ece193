// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cacheline128

package ringq

// CacheLineSize is the coherence-unit size, in bytes, that padding is
// sized against. The cacheline128 build tag selects 128 bytes for
// parts that fetch or prefetch adjacent line pairs.
const CacheLineSize = 128
