// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell

import (
	"bytes"
	"unsafe"

	"code.hybscloud.com/spin"
)

// Fallback path: the payload lives in plain memory guarded by a
// per-cell one-word spinlock. The lock's acquire/release barriers
// already provide Acquire through AcqRel semantics; a SeqCst request
// additionally issues a full barrier so both paths present the same
// ordering behavior.

const (
	cellUnlocked = 0
	cellLocked   = 1
)

// seqcstFence issues the same full barrier the native path places
// before its SeqCst accesses, so SeqCst operations on fallback cells
// join the same single total order.
func seqcstFence(order Ordering) {
	if order == SeqCst {
		seqcstBarrier()
	}
}

// acquire spins until the flag transitions unlocked→locked.
// Test-and-test-and-set keeps contended waiters reading instead of
// hammering the cache line with failed swaps, and spin.Wait escalates
// from CPU pause to yielding the processor, bounding how long a
// waiter burns a core while the holder is preempted.
func (c *Cell[T]) acquire() {
	sw := spin.Wait{}
	for {
		if c.lock.LoadRelaxed() == cellUnlocked &&
			c.lock.CompareAndSwapAcqRel(cellUnlocked, cellLocked) {
			return
		}
		sw.Once()
	}
}

func (c *Cell[T]) release() {
	c.lock.StoreRelease(cellUnlocked)
}

// sameBytes compares two payloads as opaque byte blobs, matching the
// byte-wise comparison the hardware compare-and-swap performs.
func sameBytes[T any](a, b *T) bool {
	n := unsafe.Sizeof(*a)
	return bytes.Equal(
		unsafe.Slice((*byte)(unsafe.Pointer(a)), n),
		unsafe.Slice((*byte)(unsafe.Pointer(b)), n),
	)
}

func (c *Cell[T]) fallbackLoad(order Ordering) T {
	c.acquire()
	defer c.release()
	seqcstFence(order)
	return c.value
}

func (c *Cell[T]) fallbackStore(v T, order Ordering) {
	c.acquire()
	defer c.release()
	seqcstFence(order)
	c.value = v
}

func (c *Cell[T]) fallbackSwap(v T, order Ordering) T {
	c.acquire()
	defer c.release()
	seqcstFence(order)
	prev := c.value
	c.value = v
	return prev
}

// fallbackCompareExchange serves both the strong and the weak public
// variants: mutual exclusion admits no spurious failure, so weak
// degenerates to strong here.
func (c *Cell[T]) fallbackCompareExchange(current, new T, success, failure Ordering) (T, bool) {
	c.acquire()
	defer c.release()
	if sameBytes(&c.value, &current) {
		prev := c.value
		c.value = new
		seqcstFence(success)
		return prev, true
	}
	seqcstFence(failure)
	return c.value, false
}
