// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Cell is an atomic container holding one value of type T.
//
// Any number of goroutines may operate on the same Cell concurrently
// without external synchronization. A reader never observes a
// partially written value: every load returns a value some single
// store, swap, or compare-exchange placed there in full, and all
// operations on one cell are linearizable.
//
// T must be plain data. It is stored and compared as opaque bytes;
// embedded pointers are treated as raw addresses and the cell neither
// retains nor traces references for the garbage collector, so payloads
// must not be the only reference keeping Go-managed memory alive.
//
// When IsLockFree[T]() is true, operations use native double-width
// atomic instructions; otherwise they are serialized by a per-cell
// spinlock that is never shared between cells. The path is fixed per
// type, not re-decided per call.
//
// The zero Cell holds the zero value of T and is ready to use, but
// only New applies the FallbackEnabled construction check. A Cell
// must not be copied after first use.
type Cell[T any] struct {
	lock   atomix.Uint64                  // fallback spinlock flag; also serializes word placement
	native atomix.Pointer[atomix.Uint128] // published 16-byte aligned word storage
	buf    [2*dwWidth - 1]byte            // backing store for native, worst-case padding
	value  T                              // fallback storage, guarded by lock
}

// New creates a cell holding initial.
//
// New is infallible while the fallback path is compiled in. With the
// acell_nofallback build tag set, New panics for any T that
// IsLockFree rejects, so unsupported types fail at construction
// rather than degrading silently.
func New[T any](initial T) *Cell[T] {
	c := &Cell[T]{}
	if IsLockFree[T]() {
		lo, hi := toWords(&initial)
		c.nativeWords().StoreRelaxed(lo, hi)
		return c
	}
	if !FallbackEnabled {
		panic("acell: type is not lock-free and the fallback path is disabled")
	}
	c.value = initial
	return c
}

// Load atomically returns the current value.
// Valid orderings: Relaxed, Acquire, SeqCst.
func (c *Cell[T]) Load(order Ordering) T {
	checkLoadOrdering(order)
	if IsLockFree[T]() {
		return c.nativeLoad(order)
	}
	return c.fallbackLoad(order)
}

// Store atomically replaces the current value with v.
// Valid orderings: Relaxed, Release, SeqCst.
func (c *Cell[T]) Store(v T, order Ordering) {
	checkStoreOrdering(order)
	if IsLockFree[T]() {
		c.nativeStore(v, order)
		return
	}
	c.fallbackStore(v, order)
}

// Swap atomically replaces the current value with v and returns the
// previous value. Any ordering is valid.
func (c *Cell[T]) Swap(v T, order Ordering) T {
	checkRMWOrdering(order)
	if IsLockFree[T]() {
		return c.nativeSwap(v, order)
	}
	return c.fallbackSwap(v, order)
}

// CompareExchange atomically replaces the current value with new if
// its bytes equal current. It returns the previously held value and
// true on success, or the observed value and false on mismatch, in
// which case nothing was written.
//
// success applies to the read-modify-write on success; failure
// applies to the load observed on mismatch and must be a valid load
// ordering no stronger than success.
func (c *Cell[T]) CompareExchange(current, new T, success, failure Ordering) (T, bool) {
	checkCASOrderings(success, failure)
	if IsLockFree[T]() {
		return c.nativeCompareExchange(current, new, success, failure)
	}
	return c.fallbackCompareExchange(current, new, success, failure)
}

// CompareExchangeWeak is CompareExchange under a weaker contract: it
// is additionally allowed to fail spuriously while the cell holds
// bytes equal to current, so callers must retry in a loop.
//
// This implementation never exercises that allowance — the native
// path is a single compare-exchange instruction and the fallback's
// mutual exclusion admits no spurious failure — but callers must not
// rely on the strong behavior.
func (c *Cell[T]) CompareExchangeWeak(current, new T, success, failure Ordering) (T, bool) {
	checkCASOrderings(success, failure)
	if IsLockFree[T]() {
		return c.nativeCompareExchange(current, new, success, failure)
	}
	return c.fallbackCompareExchange(current, new, success, failure)
}

// FetchUpdate atomically updates the current value with f, retrying
// the compare-exchange until it succeeds or f declines.
//
// f receives the currently observed value and returns the candidate
// new value plus true, or false to abort. FetchUpdate returns the
// value held immediately before the successful update and true, or
// the last observed value and false when f aborted. f may be called
// multiple times under contention and must be side-effect free.
//
// set applies to the winning read-modify-write; fetch applies to the
// loads feeding f, with the same rules as CompareExchange orderings.
func (c *Cell[T]) FetchUpdate(set, fetch Ordering, f func(T) (T, bool)) (T, bool) {
	checkCASOrderings(set, fetch)
	prev := c.loadForUpdate(fetch)
	sw := spin.Wait{}
	for {
		next, ok := f(prev)
		if !ok {
			return prev, false
		}
		var swapped bool
		if IsLockFree[T]() {
			prev, swapped = c.nativeCompareExchange(prev, next, set, fetch)
		} else {
			prev, swapped = c.fallbackCompareExchange(prev, next, set, fetch)
		}
		if swapped {
			return prev, true
		}
		sw.Once()
	}
}

func (c *Cell[T]) loadForUpdate(fetch Ordering) T {
	if IsLockFree[T]() {
		return c.nativeLoad(fetch)
	}
	return c.fallbackLoad(fetch)
}
