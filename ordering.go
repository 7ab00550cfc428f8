// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell

// Ordering selects the memory ordering applied around an atomic
// operation, following the C11/Rust atomics model.
//
// Every Cell operation validates its orderings before touching memory.
// An invalid ordering for an operation kind is a programmer error and
// panics; it is never silently downgraded to a weaker one.
type Ordering uint8

const (
	// Relaxed guarantees atomicity only, with no cross-goroutine
	// ordering beyond it.
	Relaxed Ordering = iota
	// Acquire applies to loads: no access after the load may be
	// reordered before it.
	Acquire
	// Release applies to stores: no access before the store may be
	// reordered after it.
	Release
	// AcqRel combines Acquire and Release for read-modify-write
	// operations.
	AcqRel
	// SeqCst additionally participates in a single total order
	// observed identically by all goroutines.
	SeqCst
)

// String returns the ordering name as used by the C11/Rust models.
func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	default:
		return "Ordering(invalid)"
	}
}

// rank orders Ordering values by strength for the failure-ordering
// rule. Acquire and Release are one-directional fences of equal rank.
func (o Ordering) rank() int {
	switch o {
	case Relaxed:
		return 0
	case Acquire, Release:
		return 1
	case AcqRel:
		return 2
	default:
		return 3
	}
}

func checkOrdering(o Ordering) {
	if o > SeqCst {
		panic("acell: unknown memory ordering " + o.String())
	}
}

// checkLoadOrdering rejects orderings with release semantics, which
// are meaningless on a pure load.
func checkLoadOrdering(o Ordering) {
	checkOrdering(o)
	if o == Release || o == AcqRel {
		panic("acell: invalid ordering " + o.String() + " for load")
	}
}

// checkStoreOrdering rejects orderings with acquire semantics, which
// are meaningless on a pure store.
func checkStoreOrdering(o Ordering) {
	checkOrdering(o)
	if o == Acquire || o == AcqRel {
		panic("acell: invalid ordering " + o.String() + " for store")
	}
}

// checkRMWOrdering accepts every ordering; swap and the success side
// of compare-exchange are read-modify-write operations.
func checkRMWOrdering(o Ordering) {
	checkOrdering(o)
}

// checkCASOrderings validates a success/failure ordering pair for
// compare-exchange. The failure side is a load, so it must be a valid
// load ordering, and it must not be stronger than the success side.
func checkCASOrderings(success, failure Ordering) {
	checkRMWOrdering(success)
	checkLoadOrdering(failure)
	if failure.rank() > success.rank() {
		panic("acell: failure ordering " + failure.String() +
			" is stronger than success ordering " + success.String())
	}
}
