// Package itertier synthesizes full iterator types out of minimal iteration cores.
//
// # Summary
//
// An iteration core only knows how to advance its position, dereference it,
// and compare it against another position of its own kind (cursor.Core).
// itertier wraps such a core into an iterator whose operation set matches the
// core's capability tier: Iter for single pass and forward cores, Bidi for
// bidirectional ones, and Random for random access cores. The tiers are plain
// generic structs around the core value, so the composition costs no
// allocation and no dynamic dispatch, and copying an iterator copies the
// position it stands on.
//
// A core that lacks the operations of a tier cannot be wrapped into that
// tier; the mismatch surfaces as a compile error at the point of composition.
package itertier

import (
	"go.llib.dev/cursorkit/port/cursor"
)

// Iter is the base iteration tier, covering single pass and forward cores.
//
// Iterators are value types. The zero value is usable when the zero value of
// the core is a valid position.
type Iter[V any, C any, P cursor.CorePtr[V, C]] struct {
	// Core is the wrapped iteration core.
	// It is exported to keep core specific operations reachable on the iterator.
	Core C
}

// New wraps a core in the base iteration tier.
//
// The value type has to be named at the call site, the rest is inferred:
//
//	it := itertier.New[rune](core)
func New[V any, C any, P cursor.CorePtr[V, C]](core C) Iter[V, C, P] {
	return Iter[V, C, P]{Core: core}
}

// Inc advances the iterator by one element and returns the advanced self.
func (it *Iter[V, C, P]) Inc() *Iter[V, C, P] {
	P(&it.Core).Advance(1)
	return it
}

// PostInc advances the iterator by one element,
// and returns a copy taken before advancing.
func (it *Iter[V, C, P]) PostInc() Iter[V, C, P] {
	prev := *it
	P(&it.Core).Advance(1)
	return prev
}

// Value returns the element at the current position.
func (it Iter[V, C, P]) Value() V {
	return *P(&it.Core).Deref()
}

// Ref returns a pointer to the element at the current position,
// through which the element can also be written.
func (it *Iter[V, C, P]) Ref() *V {
	return P(&it.Core).Deref()
}

// Equal reports whether the two iterators stand on the same position.
func (it Iter[V, C, P]) Equal(oth Iter[V, C, P]) bool {
	return P(&it.Core).Equal(oth.Core)
}

// NotEqual reports whether the two iterators stand on different positions.
func (it Iter[V, C, P]) NotEqual(oth Iter[V, C, P]) bool {
	return !it.Equal(oth)
}

// Bidi is the bidirectional iteration tier.
// On top of the base tier operations it can also step backwards.
type Bidi[V any, C any, P cursor.CorePtr[V, C]] struct {
	// Core is the wrapped iteration core.
	Core C
}

// NewBidi wraps a core in the bidirectional iteration tier.
func NewBidi[V any, C any, P cursor.CorePtr[V, C]](core C) Bidi[V, C, P] {
	return Bidi[V, C, P]{Core: core}
}

// Inc advances the iterator by one element and returns the advanced self.
func (it *Bidi[V, C, P]) Inc() *Bidi[V, C, P] {
	P(&it.Core).Advance(1)
	return it
}

// PostInc advances the iterator by one element,
// and returns a copy taken before advancing.
func (it *Bidi[V, C, P]) PostInc() Bidi[V, C, P] {
	prev := *it
	P(&it.Core).Advance(1)
	return prev
}

// Dec moves the iterator back by one element and returns the moved self.
func (it *Bidi[V, C, P]) Dec() *Bidi[V, C, P] {
	P(&it.Core).Advance(-1)
	return it
}

// PostDec moves the iterator back by one element,
// and returns a copy taken before moving.
func (it *Bidi[V, C, P]) PostDec() Bidi[V, C, P] {
	prev := *it
	P(&it.Core).Advance(-1)
	return prev
}

// Value returns the element at the current position.
func (it Bidi[V, C, P]) Value() V {
	return *P(&it.Core).Deref()
}

// Ref returns a pointer to the element at the current position,
// through which the element can also be written.
func (it *Bidi[V, C, P]) Ref() *V {
	return P(&it.Core).Deref()
}

// Equal reports whether the two iterators stand on the same position.
func (it Bidi[V, C, P]) Equal(oth Bidi[V, C, P]) bool {
	return P(&it.Core).Equal(oth.Core)
}

// NotEqual reports whether the two iterators stand on different positions.
func (it Bidi[V, C, P]) NotEqual(oth Bidi[V, C, P]) bool {
	return !it.Equal(oth)
}
