// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package acell provides a generic atomic container for double-word values.
//
// A [Cell] holds exactly one value of an arbitrary plain-data type T and
// supports atomic load, store, swap, compare-exchange, and fetch-update
// operations with explicit memory orderings. When T is exactly one
// double-word wide (16 bytes) and the processor exposes a native
// double-width compare-and-swap, operations compile down to single
// lock-free hardware atomics. Every other type routes to a spinlock
// fallback with byte-identical observable semantics.
//
// # Quick Start
//
//	type Head struct {
//	    Ptr   uintptr
//	    Count uint64
//	}
//
//	c := acell.New(Head{})
//
//	// Lock-free on amd64 (with CMPXCHG16B) and arm64.
//	fmt.Println(acell.IsLockFree[Head]())
//
//	c.Store(Head{Ptr: p, Count: 1}, acell.Release)
//	h := c.Load(acell.Acquire)
//
//	// Compare-exchange returns the observed value and a success flag.
//	prev, swapped := c.CompareExchange(h, Head{Ptr: q, Count: h.Count + 1},
//	    acell.AcqRel, acell.Acquire)
//
// # Memory Orderings
//
// Every operation takes explicit [Ordering] tags in the style of the C11
// and Rust atomics models:
//
//	Relaxed  atomicity only, no cross-goroutine ordering
//	Acquire  loads; later accesses cannot move before the load
//	Release  stores; earlier accesses cannot move after the store
//	AcqRel   read-modify-write; both directions
//	SeqCst   single global total order
//
// Orderings are validated before memory is touched. Load rejects Release
// and AcqRel; Store rejects Acquire and AcqRel; a compare-exchange
// failure ordering must be a valid load ordering no stronger than the
// success ordering. Violations panic: they are programmer errors, never
// silently downgraded.
//
// SeqCst is realized as a full memory barrier (MFENCE, DMB ISH) issued
// immediately before the access, on the native and fallback paths
// alike, which places all SeqCst operations across all cells in one
// total order.
//
// # Lock-Free and Fallback Paths
//
// [IsLockFree] is a pure function of the type: it reports true only when
// T's size equals the double-word width, T's alignment is compatible,
// and the target processor has the instruction (CMPXCHG16B on amd64,
// LDXP/STXP on arm64). The decision is fixed per type before main runs
// and never changes across calls.
//
// Types the classifier rejects — smaller, larger, or on processors
// without the instruction — use a per-cell spinlock. The lock is a
// single-word test-and-set flag acquired with acquire-release semantics
// and a progressive spin-then-yield wait, so short critical sections
// stay close to native latency. SeqCst requests additionally issue a
// full barrier so ordering behavior matches the native path. The
// fallback is NOT lock-free: a preempted holder can delay other
// goroutines. Callers that need signal-safe or real-time guarantees
// must check IsLockFree and avoid fallback cells.
//
// Building with the acell_nofallback tag disables the fallback path
// entirely: [New] panics for any type the classifier rejects instead of
// degrading to a lock.
//
// # Payload Semantics
//
// The cell treats T as an opaque fixed-size byte blob. Comparison in
// CompareExchange is byte-wise, and a payload embedding a pointer is
// stored and compared as raw address bytes. The cell takes no ownership
// of pointee memory; callers retain full responsibility for the
// lifetime of anything a payload points at.
//
// # Error Handling
//
// A failed compare-exchange is a normal outcome, reported as
// (observed, false) so the caller can retry. The only panics are usage
// errors: invalid orderings, constructing a non-lock-free cell with the
// fallback disabled, and FetchAdd/FetchSub on a payload that is not
// exactly double-word wide.
//
//	backoff := iox.Backoff{}
//	for {
//	    cur := c.Load(acell.Relaxed)
//	    if _, ok := c.CompareExchangeWeak(cur, next(cur), acell.AcqRel, acell.Relaxed); ok {
//	        break
//	    }
//	    backoff.Wait()
//	}
//
// # Race Detection
//
// The fallback path guards plain memory with atomix-based spinlock
// operations the race detector cannot observe, so concurrent fallback
// tests report false positives under -race. Tests incompatible with
// race detection are excluded via //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for CPU
// pause instructions, and github.com/klauspost/cpuid for the amd64
// CMPXCHG16B probe.
package acell
