// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cacheline128

package ringq

// CacheLineSize is the coherence-unit size, in bytes, that padding is
// sized against. 64 bytes covers current x86-64 and most arm64 parts.
// Build with -tags cacheline128 for parts that prefetch line pairs.
const CacheLineSize = 64
