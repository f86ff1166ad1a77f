// Package slicecursor provides a random access iteration core over a slice.
package slicecursor

import (
	"go.llib.dev/cursorkit/pkg/itertier"
	"go.llib.dev/cursorkit/port/cursor"
)

// Cursor is a position inside a slice.
//
// Copies share the backing slice and move independently. Comparing or
// measuring cursors of two different slices is meaningless; both operations
// work on the position index alone. The position can point outside the
// slice, such as the one past the end sentinel, but dereferencing there
// panics with an index out of range error.
type Cursor[V any] struct {
	vs  []V
	idx int
}

var _ cursor.RandomAccessCore[string, Cursor[string]] = (*Cursor[string])(nil)

// At returns a cursor standing on the i-th element of vs.
func At[V any](vs []V, i int) Cursor[V] {
	return Cursor[V]{vs: vs, idx: i}
}

// Start returns a cursor standing on the first element of vs.
func Start[V any](vs []V) Cursor[V] {
	return At(vs, 0)
}

// End returns the sentinel cursor standing one past the last element of vs.
func End[V any](vs []V) Cursor[V] {
	return At(vs, len(vs))
}

// Advance moves the position by n elements.
func (c *Cursor[V]) Advance(n int) {
	c.idx += n
}

// Deref returns a pointer to the element the cursor stands on.
func (c Cursor[V]) Deref() *V {
	return &c.vs[c.idx]
}

// Equal reports whether the two cursors stand on the same index.
func (c Cursor[V]) Equal(oth Cursor[V]) bool {
	return c.idx == oth.idx
}

// Difference returns how many positions the receiver stands ahead of oth.
func (c Cursor[V]) Difference(oth Cursor[V]) int {
	return c.idx - oth.idx
}

// Tag declares the capability tier of the cursor.
func (Cursor[V]) Tag() cursor.Tag {
	return cursor.RandomAccess
}

// Index returns the current position in the slice.
func (c Cursor[V]) Index() int {
	return c.idx
}

// Iter is the random access iterator tier over a slice cursor.
type Iter[V any] = itertier.Random[V, Cursor[V], *Cursor[V]]
