// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Native path: the payload's bytes are reinterpreted as a (lo, hi)
// machine word pair stored in an atomix.Uint128. Callers guarantee
// sizeof(T) == dwWidth before crossing into any function here.

//go:nosplit
func toWords[T any](v *T) (lo, hi uint64) {
	w := (*[2]uint64)(unsafe.Pointer(v))
	return w[0], w[1]
}

//go:nosplit
func fromWords[T any](lo, hi uint64) T {
	w := [2]uint64{lo, hi}
	return *(*T)(unsafe.Pointer(&w))
}

// nativeWords returns the cell's 16-byte-aligned word storage,
// placing it on first use. atomix.Uint128 requires an alignment no Go
// struct layout can promise, so the words live at an aligned offset
// inside the cell's own buffer and the located address is published
// through an atomic pointer.
func (c *Cell[T]) nativeWords() *atomix.Uint128 {
	if w := c.native.LoadAcquire(); w != nil {
		return w
	}
	return c.placeWords()
}

// placeWords aligns and publishes the word storage. The cell spinlock
// serializes the first placement; losers observe the winner's pointer
// on the relaxed reload. The buffer starts zeroed, so a zero Cell's
// words read as the zero value of T without an explicit store.
func (c *Cell[T]) placeWords() *atomix.Uint128 {
	c.acquire()
	w := c.native.LoadRelaxed()
	if w == nil {
		_, w = atomix.PlaceAlignedUint128(c.buf[:], 0)
		c.native.StoreRelease(w)
	}
	c.release()
	return w
}

// seqcstBarrier issues a full memory barrier (MFENCE on amd64,
// DMB ISH on arm64). atomix has no sequentially consistent access
// tier, so every SeqCst operation places this barrier immediately
// before its strongest acquire/release access; applied uniformly,
// that keeps all SeqCst accesses in a single total order.
func seqcstBarrier() {
	atomix.BarrierAcqRel()
}

func loadWords(w *atomix.Uint128, order Ordering) (lo, hi uint64) {
	switch order {
	case Relaxed:
		return w.LoadRelaxed()
	case Acquire:
		return w.LoadAcquire()
	default: // SeqCst
		seqcstBarrier()
		return w.LoadAcquire()
	}
}

func storeWords(w *atomix.Uint128, lo, hi uint64, order Ordering) {
	switch order {
	case Relaxed:
		w.StoreRelaxed(lo, hi)
	case Release:
		w.StoreRelease(lo, hi)
	default: // SeqCst
		seqcstBarrier()
		w.StoreRelease(lo, hi)
	}
}

func swapWords(w *atomix.Uint128, lo, hi uint64, order Ordering) (prevLo, prevHi uint64) {
	switch order {
	case Relaxed:
		return w.SwapRelaxed(lo, hi)
	case Acquire:
		return w.SwapAcquire(lo, hi)
	case Release:
		return w.SwapRelease(lo, hi)
	case AcqRel:
		return w.SwapAcqRel(lo, hi)
	default: // SeqCst
		seqcstBarrier()
		return w.SwapAcqRel(lo, hi)
	}
}

// casWords is the boolean compare-and-swap behind the arithmetic
// retry loops. order is the success ordering; the failure ordering
// never exceeds it, so the success tier covers both outcomes.
func casWords(w *atomix.Uint128, oldLo, oldHi, newLo, newHi uint64, order Ordering) bool {
	switch order {
	case Relaxed:
		return w.CompareAndSwapRelaxed(oldLo, oldHi, newLo, newHi)
	case Acquire:
		return w.CompareAndSwapAcquire(oldLo, oldHi, newLo, newHi)
	case Release:
		return w.CompareAndSwapRelease(oldLo, oldHi, newLo, newHi)
	case AcqRel:
		return w.CompareAndSwapAcqRel(oldLo, oldHi, newLo, newHi)
	default: // SeqCst
		seqcstBarrier()
		return w.CompareAndSwapAcqRel(oldLo, oldHi, newLo, newHi)
	}
}

// caxWords compare-exchanges and returns the previously held words:
// equal to old on success, the observed mismatch otherwise.
func caxWords(w *atomix.Uint128, oldLo, oldHi, newLo, newHi uint64, order Ordering) (prevLo, prevHi uint64) {
	switch order {
	case Relaxed:
		return w.CompareExchangeRelaxed(oldLo, oldHi, newLo, newHi)
	case Acquire:
		return w.CompareExchangeAcquire(oldLo, oldHi, newLo, newHi)
	case Release:
		return w.CompareExchangeRelease(oldLo, oldHi, newLo, newHi)
	case AcqRel:
		return w.CompareExchangeAcqRel(oldLo, oldHi, newLo, newHi)
	default: // SeqCst
		seqcstBarrier()
		return w.CompareExchangeAcqRel(oldLo, oldHi, newLo, newHi)
	}
}

func (c *Cell[T]) nativeLoad(order Ordering) T {
	lo, hi := loadWords(c.nativeWords(), order)
	return fromWords[T](lo, hi)
}

func (c *Cell[T]) nativeStore(v T, order Ordering) {
	lo, hi := toWords(&v)
	storeWords(c.nativeWords(), lo, hi, order)
}

func (c *Cell[T]) nativeSwap(v T, order Ordering) T {
	lo, hi := toWords(&v)
	prevLo, prevHi := swapWords(c.nativeWords(), lo, hi, order)
	return fromWords[T](prevLo, prevHi)
}

// nativeCompareExchange is one hardware compare-exchange: a single
// attempt with the previous value taken straight from the
// instruction, so failure always reports genuinely different bytes.
func (c *Cell[T]) nativeCompareExchange(current, new T, success, _ Ordering) (T, bool) {
	curLo, curHi := toWords(&current)
	newLo, newHi := toWords(&new)
	prevLo, prevHi := caxWords(c.nativeWords(), curLo, curHi, newLo, newHi, success)
	if prevLo == curLo && prevHi == curHi {
		return current, true
	}
	return fromWords[T](prevLo, prevHi), false
}
