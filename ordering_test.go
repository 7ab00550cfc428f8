// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package acell_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/acell"
)

func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want one containing %q", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Fatalf("panic %v, want one containing %q", r, want)
		}
	}()
	f()
}

func TestOrderingString(t *testing.T) {
	for o, want := range map[acell.Ordering]string{
		acell.Relaxed: "Relaxed",
		acell.Acquire: "Acquire",
		acell.Release: "Release",
		acell.AcqRel:  "AcqRel",
		acell.SeqCst:  "SeqCst",
	} {
		if got := o.String(); got != want {
			t.Fatalf("String: got %q, want %q", got, want)
		}
	}
}

// TestLoadOrderingRejected verifies misuse is rejected before any
// memory is touched: the stored value must stay intact.
func TestLoadOrderingRejected(t *testing.T) {
	c := acell.New(pair{Lo: 1})
	mustPanic(t, "invalid ordering Release for load", func() {
		c.Load(acell.Release)
	})
	mustPanic(t, "invalid ordering AcqRel for load", func() {
		c.Load(acell.AcqRel)
	})
	if got := c.Load(acell.SeqCst); got != (pair{Lo: 1}) {
		t.Fatalf("value disturbed by rejected load: got %+v", got)
	}
}

func TestStoreOrderingRejected(t *testing.T) {
	c := acell.New(pair{Lo: 1})
	mustPanic(t, "invalid ordering Acquire for store", func() {
		c.Store(pair{Lo: 2}, acell.Acquire)
	})
	mustPanic(t, "invalid ordering AcqRel for store", func() {
		c.Store(pair{Lo: 2}, acell.AcqRel)
	})
	if got := c.Load(acell.SeqCst); got != (pair{Lo: 1}) {
		t.Fatalf("value disturbed by rejected store: got %+v", got)
	}
}

func TestCompareExchangeOrderingRejected(t *testing.T) {
	c := acell.New(pair{})

	// Failure side is a load; release semantics are invalid there.
	mustPanic(t, "invalid ordering Release for load", func() {
		c.CompareExchange(pair{}, pair{Lo: 1}, acell.SeqCst, acell.Release)
	})
	mustPanic(t, "invalid ordering AcqRel for load", func() {
		c.CompareExchangeWeak(pair{}, pair{Lo: 1}, acell.SeqCst, acell.AcqRel)
	})

	// Failure stronger than success.
	mustPanic(t, "stronger than success ordering", func() {
		c.CompareExchange(pair{}, pair{Lo: 1}, acell.Relaxed, acell.Acquire)
	})
	mustPanic(t, "stronger than success ordering", func() {
		c.CompareExchange(pair{}, pair{Lo: 1}, acell.AcqRel, acell.SeqCst)
	})

	// Equal-strength pairs are fine.
	if _, swapped := c.CompareExchange(pair{}, pair{Lo: 1}, acell.Acquire, acell.Acquire); !swapped {
		t.Fatal("CompareExchange(Acquire, Acquire) rejected")
	}
}

func TestFetchUpdateOrderingRejected(t *testing.T) {
	c := acell.New(pair{})
	mustPanic(t, "invalid ordering Release for load", func() {
		c.FetchUpdate(acell.SeqCst, acell.Release, func(v pair) (pair, bool) { return v, true })
	})
	mustPanic(t, "stronger than success ordering", func() {
		c.FetchUpdate(acell.Relaxed, acell.SeqCst, func(v pair) (pair, bool) { return v, true })
	})
}

func TestUnknownOrderingRejected(t *testing.T) {
	c := acell.New(pair{})
	mustPanic(t, "unknown memory ordering", func() {
		c.Load(acell.Ordering(250))
	})
}

// Fallback cells validate orderings identically even though the lock
// does not distinguish strengths internally.
func TestOrderingRejectedOnFallbackPath(t *testing.T) {
	if !acell.FallbackEnabled {
		t.Skip("fallback path disabled in this build")
	}
	c := acell.New(vec3{X: 1})
	mustPanic(t, "invalid ordering Release for load", func() {
		c.Load(acell.Release)
	})
	mustPanic(t, "invalid ordering Acquire for store", func() {
		c.Store(vec3{}, acell.Acquire)
	})
	if got := c.Load(acell.SeqCst); got != (vec3{X: 1}) {
		t.Fatalf("value disturbed by rejected ops: got %+v", got)
	}
}
