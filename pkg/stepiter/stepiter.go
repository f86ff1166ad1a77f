// Package stepiter provides iteration over random access data with a real valued step size.
//
// # Summary
//
// A step iterator wraps a random access core and advances it by a floating
// point step. The fractional part of the movement that cannot be applied to
// the wrapped core accumulates as drift and gets corrected on later advances,
// so a long walk stays true to the real valued position. The most common use
// case is reading a sequence at a rate it was not produced at, which is a
// fixed ratio resampling of the sequence.
//
// When walking between two step iterators, prefer the ordering based loop
// condition of itertier.Values over an inequality check. A fractional step
// can jump over the exact end position, and an inequality based loop would
// keep going past it.
package stepiter

import (
	"math"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/cursorkit/pkg/itertier"
	"go.llib.dev/cursorkit/pkg/slicecursor"
	"go.llib.dev/cursorkit/port/cursor"
)

// ErrZeroStep is raised as a panic when a step iterator is given a zero step size.
const ErrZeroStep errorkit.Error = "a step iterator requires a non-zero step size"

// Core is the iteration core behind the step iterator.
//
// It wraps a random access core and keeps the real valued position as the
// wrapped position plus a drift in the [0, 1) range. The zero value is not
// usable, construct it through New, Over or End.
type Core[V any, C any, P cursor.RandomAccessCorePtr[V, C]] struct {
	cursor C
	step   float64
	drift  float64
}

// Advance moves the position by n steps of Step size.
//
// The whole part of the accumulated movement goes to the wrapped cursor,
// the fractional remainder stays behind as drift, which keeps the drift
// inside the [0, 1) range on every advance.
func (c *Core[V, C, P]) Advance(n int) {
	whole, frac := math.Modf(c.drift + c.step*float64(n))
	if frac < 0 { // borrow from the whole part so the drift stays non-negative
		whole--
		frac++
	}
	if 1 <= frac { // the borrow can round frac up to one when it was just under zero
		whole++
		frac--
	}
	P(&c.cursor).Advance(int(whole))
	c.drift = frac
}

// Deref returns a pointer to the element the wrapped cursor stands on.
// The drift takes no part in it, the nearest whole position is what counts.
func (c *Core[V, C, P]) Deref() *V {
	return P(&c.cursor).Deref()
}

// Equal reports whether the wrapped cursors and the drifts both match.
// The step size is left out, two iterators walking at different rates
// can still stand on the same position.
func (c *Core[V, C, P]) Equal(oth Core[V, C, P]) bool {
	return P(&c.cursor).Equal(oth.cursor) && c.drift == oth.drift
}

// Difference returns the distance between the two positions measured in
// Step sized units, drift included, truncated towards zero.
func (c *Core[V, C, P]) Difference(oth Core[V, C, P]) int {
	d := P(&c.cursor).Difference(oth.cursor)
	return int((float64(d) + (c.drift - oth.drift)) / c.step)
}

// Tag declares the capability tier of the core.
func (c *Core[V, C, P]) Tag() cursor.Tag {
	return cursor.RandomAccess
}

// Drift is the inaccuracy of the element the iterator points to.
//
// With a whole valued Step it stays constant, otherwise it is the fractional
// part of the real valued index, in the [0, 1) range. The real position is
// the wrapped cursor's position plus Drift.
func (c *Core[V, C, P]) Drift() float64 {
	return c.drift
}

// Step returns the step size the iterator advances with.
func (c *Core[V, C, P]) Step() float64 {
	return c.step
}

// SetStep replaces the step size of the iterator.
//
// The position is left untouched, the new size applies to later advances
// only. A boundary iterator derived with the old step may no longer be
// exactly reachable afterwards, which is why walks should use an ordering
// based loop condition. A zero step size panics with ErrZeroStep.
func (c *Core[V, C, P]) SetStep(step float64) {
	c.step = mustStep(step)
}

// Data returns a copy of the wrapped cursor.
func (c *Core[V, C, P]) Data() C {
	return c.cursor
}

// Iter is the random access iterator tier over a step Core.
type Iter[V any, C any, P cursor.RandomAccessCorePtr[V, C]] = itertier.Random[V, Core[V, C, P], *Core[V, C, P]]

// SliceIter is the step iterator type that walks a slice, as made by Over and End.
type SliceIter[V any] = Iter[V, slicecursor.Cursor[V], *slicecursor.Cursor[V]]

// New returns a step iterator over the given random access core.
//
//	it := stepiter.New[float32](slicecursor.Start(samples), stepiter.WithStep(1.5))
//
// The step size defaults to 1. A negative step walks backwards.
// A zero step size panics with ErrZeroStep.
func New[V any, C any, P cursor.RandomAccessCorePtr[V, C]](cur C, opts ...Option) Iter[V, C, P] {
	c := option.ToConfig[Config](opts)
	return itertier.NewRandom[V](Core[V, C, P]{
		cursor: cur,
		step:   mustStep(c.Step),
	})
}

// Over returns a step iterator standing on the first element of vs.
func Over[V any](vs []V, opts ...Option) SliceIter[V] {
	return New[V](slicecursor.Start(vs), opts...)
}

// End returns the step iterator counterpart of the one past the end position
// of vs, meant to be the boundary of a walk over the slice.
func End[V any](vs []V, opts ...Option) SliceIter[V] {
	return New[V](slicecursor.End(vs), opts...)
}

func mustStep(step float64) float64 {
	if step == 0 {
		panic(ErrZeroStep)
	}
	return step
}

// Option configures the step iterator constructors.
type Option option.Option[Config]

// Config groups the configuration of the step iterator constructors.
type Config struct {
	// Step is the real valued step size the iterator advances with.
	// Defaults to 1.
	Step float64
}

var _ Option = Config{}

func (c *Config) Init() {
	c.Step = 1
}

func (c Config) Configure(oth *Config) {
	oth.Step = zerokit.Coalesce(c.Step, oth.Step)
}

// WithStep sets the real valued step size the iterator advances with.
func WithStep(step float64) Option {
	return option.Func[Config](func(c *Config) {
		c.Step = step
	})
}
