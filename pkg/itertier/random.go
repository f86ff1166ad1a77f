package itertier

import (
	"iter"

	"go.llib.dev/frameless/pkg/compare"

	"go.llib.dev/cursorkit/port/cursor"
)

// Random is the random access iteration tier.
//
// On top of the bidirectional tier operations it has iterator arithmetic:
// jumping by a distance, measuring the distance between two iterators,
// ordering comparisons, and offset dereference.
type Random[V any, C any, P cursor.RandomAccessCorePtr[V, C]] struct {
	// Core is the wrapped iteration core.
	Core C
}

// NewRandom wraps a core in the random access iteration tier.
func NewRandom[V any, C any, P cursor.RandomAccessCorePtr[V, C]](core C) Random[V, C, P] {
	return Random[V, C, P]{Core: core}
}

// Inc advances the iterator by one element and returns the advanced self.
func (it *Random[V, C, P]) Inc() *Random[V, C, P] {
	P(&it.Core).Advance(1)
	return it
}

// PostInc advances the iterator by one element,
// and returns a copy taken before advancing.
func (it *Random[V, C, P]) PostInc() Random[V, C, P] {
	prev := *it
	P(&it.Core).Advance(1)
	return prev
}

// Dec moves the iterator back by one element and returns the moved self.
func (it *Random[V, C, P]) Dec() *Random[V, C, P] {
	P(&it.Core).Advance(-1)
	return it
}

// PostDec moves the iterator back by one element,
// and returns a copy taken before moving.
func (it *Random[V, C, P]) PostDec() Random[V, C, P] {
	prev := *it
	P(&it.Core).Advance(-1)
	return prev
}

// Value returns the element at the current position.
func (it Random[V, C, P]) Value() V {
	return *P(&it.Core).Deref()
}

// Ref returns a pointer to the element at the current position,
// through which the element can also be written.
func (it *Random[V, C, P]) Ref() *V {
	return P(&it.Core).Deref()
}

// Equal reports whether the two iterators stand on the same position.
func (it Random[V, C, P]) Equal(oth Random[V, C, P]) bool {
	return P(&it.Core).Equal(oth.Core)
}

// NotEqual reports whether the two iterators stand on different positions.
func (it Random[V, C, P]) NotEqual(oth Random[V, C, P]) bool {
	return !it.Equal(oth)
}

// Add returns a copy of the iterator advanced by d elements.
// The receiver stays where it is.
func (it Random[V, C, P]) Add(d int) Random[V, C, P] {
	P(&it.Core).Advance(d)
	return it
}

// Sub returns a copy of the iterator moved back by d elements.
// The receiver stays where it is.
func (it Random[V, C, P]) Sub(d int) Random[V, C, P] {
	P(&it.Core).Advance(-d)
	return it
}

// Diff returns the signed distance between the two iterators,
// measured in elements that oth would need to advance to reach the receiver.
func (it Random[V, C, P]) Diff(oth Random[V, C, P]) int {
	return P(&it.Core).Difference(oth.Core)
}

// Compare returns the sign of the distance between the two iterators
// as -1, 0 or +1.
func (it Random[V, C, P]) Compare(oth Random[V, C, P]) int {
	return compare.Numbers(it.Diff(oth), 0)
}

// Less reports whether the iterator stands before oth.
func (it Random[V, C, P]) Less(oth Random[V, C, P]) bool {
	return compare.IsLess(it.Compare(oth))
}

// LessOrEqual reports whether the iterator stands before oth or on the same position.
func (it Random[V, C, P]) LessOrEqual(oth Random[V, C, P]) bool {
	return compare.IsLessOrEqual(it.Compare(oth))
}

// Greater reports whether the iterator stands after oth.
func (it Random[V, C, P]) Greater(oth Random[V, C, P]) bool {
	return compare.IsGreater(it.Compare(oth))
}

// GreaterOrEqual reports whether the iterator stands after oth or on the same position.
func (it Random[V, C, P]) GreaterOrEqual(oth Random[V, C, P]) bool {
	return compare.IsGreaterOrEqual(it.Compare(oth))
}

// Advance moves the iterator forward by d elements and returns the moved self.
func (it *Random[V, C, P]) Advance(d int) *Random[V, C, P] {
	P(&it.Core).Advance(d)
	return it
}

// Retreat moves the iterator back by d elements and returns the moved self.
func (it *Random[V, C, P]) Retreat(d int) *Random[V, C, P] {
	P(&it.Core).Advance(-d)
	return it
}

// At returns a pointer to the element d distance away from the current position.
// The iterator itself stays where it is.
func (it Random[V, C, P]) At(d int) *V {
	P(&it.Core).Advance(d)
	return P(&it.Core).Deref()
}

// Values returns a sequence that walks from first towards last,
// yielding the element at every position it visits.
//
// The walk keeps going while first is ordered before last, rather than until
// the two become equal. A fractional or mid-walk changed step size can jump
// over the exact end position, and the ordering based condition terminates in
// those cases too. Positions whose remaining distance to last truncates to
// zero count as reached, so such tail positions are not yielded.
//
// The sequence can be ranged over multiple times, each walk starts again from
// first, as long as the core itself is multi-pass.
func Values[V any, C any, P cursor.RandomAccessCorePtr[V, C]](first, last Random[V, C, P]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := first; it.Less(last); it.Inc() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
