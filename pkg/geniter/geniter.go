// Package geniter provides a single pass iterator that generates its elements on demand.
package geniter

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/cursorkit/pkg/itertier"
	"go.llib.dev/cursorkit/port/cursor"
)

// ErrNegativeAdvance is raised as a panic when a generating iterator is asked to move backwards.
const ErrNegativeAdvance errorkit.Error = "a generating iterator can only advance forward"

// Core is the iteration core behind the generating iterator.
//
// Advancing invokes the generator function and holds on to its return value
// until the next advance. The value type is constrained to comparable so
// positions can be checked against each other and against plain values.
type Core[V comparable] struct {
	generate func() V
	last     V
}

var _ cursor.Core[int, Core[int]] = (*Core[int])(nil)

// Advance invokes the generator n times and keeps the last returned value.
//
// Advance(0) leaves the iterator untouched without invoking the generator.
// A negative n panics with ErrNegativeAdvance. A panic raised by the
// generator itself propagates to the caller unchanged.
func (c *Core[V]) Advance(n int) {
	if n < 0 {
		panic(ErrNegativeAdvance.F("advance by %d", n))
	}
	for i := 0; i < n; i++ {
		c.last = c.generate()
	}
}

// Deref returns a pointer to the last generated value.
// Before the first advance it points to the zero value of V.
// Reading it repeatedly does not invoke the generator.
func (c *Core[V]) Deref() *V {
	return &c.last
}

// Equal reports whether the two iterators hold the same last generated value.
func (c *Core[V]) Equal(oth Core[V]) bool {
	return c.last == oth.last
}

// Reached reports whether the last generated value equals v.
//
// A generating iterator has no end position to compare against,
// so a loop over one stops by checking the generated values for a sentinel:
//
//	for it := geniter.New(read); !it.Core.Reached(eof); it.Inc() {
func (c *Core[V]) Reached(v V) bool {
	return c.last == v
}

// Tag declares the capability tier of the core.
func (c *Core[V]) Tag() cursor.Tag {
	return cursor.SinglePass
}

// Iter is the single pass iterator tier over a generating Core.
type Iter[V comparable] = itertier.Iter[V, Core[V], *Core[V]]

// New returns a generating iterator around fn.
//
// The iterator starts out holding the zero value of V,
// fn is invoked the first time by the first advance.
func New[V comparable](fn func() V) Iter[V] {
	return itertier.New[V](Core[V]{generate: fn})
}
