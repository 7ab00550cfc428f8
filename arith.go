// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell

import (
	"math/bits"
	"unsafe"

	"code.hybscloud.com/spin"
)

// Fetch arithmetic treats the payload as a single 128-bit
// two's-complement integer in native word order and wraps on
// overflow. It is only defined at the double-word width, on either
// path; other sizes panic.

func checkArith[T any]() {
	var v T
	if unsafe.Sizeof(v) != dwWidth {
		panic("acell: fetch arithmetic requires a double-word payload")
	}
}

func addWords(lo, hi, dLo, dHi uint64) (uint64, uint64) {
	sumLo, carry := bits.Add64(lo, dLo, 0)
	sumHi, _ := bits.Add64(hi, dHi, carry)
	return sumLo, sumHi
}

func subWords(lo, hi, dLo, dHi uint64) (uint64, uint64) {
	difLo, borrow := bits.Sub64(lo, dLo, 0)
	difHi, _ := bits.Sub64(hi, dHi, borrow)
	return difLo, difHi
}

// FetchAdd atomically adds delta to the current value, interpreting
// both as wrapping 128-bit integers, and returns the previous value.
// Any ordering is valid. Panics unless T is exactly double-word wide.
func (c *Cell[T]) FetchAdd(delta T, order Ordering) T {
	checkRMWOrdering(order)
	checkArith[T]()
	dLo, dHi := toWords(&delta)
	return c.fetchWords(dLo, dHi, order, addWords)
}

// FetchSub atomically subtracts delta from the current value,
// interpreting both as wrapping 128-bit integers, and returns the
// previous value. Any ordering is valid. Panics unless T is exactly
// double-word wide.
func (c *Cell[T]) FetchSub(delta T, order Ordering) T {
	checkRMWOrdering(order)
	checkArith[T]()
	dLo, dHi := toWords(&delta)
	return c.fetchWords(dLo, dHi, order, subWords)
}

func (c *Cell[T]) fetchWords(dLo, dHi uint64, order Ordering, op func(lo, hi, dLo, dHi uint64) (uint64, uint64)) T {
	if IsLockFree[T]() {
		w := c.nativeWords()
		sw := spin.Wait{}
		for {
			lo, hi := loadWords(w, Relaxed)
			newLo, newHi := op(lo, hi, dLo, dHi)
			if casWords(w, lo, hi, newLo, newHi, order) {
				return fromWords[T](lo, hi)
			}
			sw.Once()
		}
	}
	c.acquire()
	defer c.release()
	seqcstFence(order)
	prev := c.value
	lo, hi := toWords(&c.value)
	newLo, newHi := op(lo, hi, dLo, dHi)
	c.value = fromWords[T](newLo, newHi)
	return prev
}
