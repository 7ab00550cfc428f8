// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell

import "unsafe"

// dwWidth is the double-word width: the byte size of the widest
// single compare-and-swap the supported processors expose.
const dwWidth = 16

// IsLockFree reports whether cells of type T use native double-width
// atomic instructions instead of the spinlock fallback.
//
// The result is a pure function of T and the processor: true iff T is
// exactly one double-word wide, T's alignment is compatible with the
// instruction, and the processor has the instruction (CMPXCHG16B on
// amd64, LDXP/STLXP on arm64). It is fixed before main runs and never
// varies across calls, so callers with lock-freedom requirements can
// check once per type.
//
// Fallback cells are functionally identical but NOT lock-free: a
// preempted lock holder can delay other goroutines, which makes them
// unsuitable for signal handlers and hard real-time paths.
func IsLockFree[T any]() bool {
	var v T
	return hasNativeDWCAS &&
		unsafe.Sizeof(v) == dwWidth &&
		dwWidth%unsafe.Alignof(v) == 0
}
