// Package cursorcontract contains the behavioural contracts of the cursor port.
//
// The contract functions take a constructor for the core under test and
// return a testable suite. The constructor is expected to return a fresh
// core standing on a dereferenceable position with at least eight elements
// of headroom ahead of it; the laws advance at most that far.
package cursorcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit/port/cursor"
)

// Core validates the behaviour every capability tier shares.
func Core[V any, C any, P cursor.CorePtr[V, C]](mk func(tb testing.TB) C, opts ...Option[V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[V]](opts)

	s.Test("the declared capability tag is a known tier", func(t *testcase.T) {
		core := mk(t)
		tag := P(&core).Tag()
		known := tag == cursor.SinglePass ||
			tag == cursor.Forward ||
			tag == cursor.Bidirectional ||
			tag == cursor.RandomAccess
		assert.True(t, known)
	})

	s.Test("a copy stands on the same position as its original", func(t *testcase.T) {
		core := mk(t)
		cp := core
		assert.True(t, P(&core).Equal(cp))
		assert.True(t, P(&cp).Equal(core))
	})

	s.Test("advancing by zero moves nothing", func(t *testcase.T) {
		core := mk(t)
		before := core
		P(&core).Advance(0)
		assert.True(t, P(&core).Equal(before))
		assert.Equal(t, *P(&core).Deref(), *P(&before).Deref())
	})

	s.Test("dereferencing is repeatable and moves nothing", func(t *testcase.T) {
		core := mk(t)
		before := core
		first := *P(&core).Deref()
		second := *P(&core).Deref()
		assert.Equal(t, first, second)
		assert.True(t, P(&core).Equal(before))
	})

	s.Test("the element is writable through the dereferenced pointer", func(t *testcase.T) {
		core := mk(t)
		exp := c.makeValue(t)
		*P(&core).Deref() = exp
		assert.Equal(t, exp, *P(&core).Deref())
	})

	return s.AsSuite(fmt.Sprintf("cursor.Core[%s]", reflectkit.TypeOf[V]().String()))
}

// Forward validates cores that support multi-pass traversal.
func Forward[V any, C any, P cursor.CorePtr[V, C]](mk func(tb testing.TB) C, opts ...Option[V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[V]](opts)

	Core[V, C, P](mk, c).Spec(s)

	s.Test("the declared capability tag grants multi-pass traversal", func(t *testcase.T) {
		core := mk(t)
		assert.True(t, P(&core).Tag() != cursor.SinglePass)
	})

	s.Test("copies advance independently of their original", func(t *testcase.T) {
		core := mk(t)
		before := core
		cp := core
		P(&cp).Advance(t.Random.IntBetween(1, 7))
		assert.True(t, P(&core).Equal(before))
		assert.False(t, P(&cp).Equal(core))
	})

	s.Test("copies advanced by the same distance stay in lockstep", func(t *testcase.T) {
		var (
			a = mk(t)
			b = a
			n = t.Random.IntBetween(1, 7)
		)
		P(&a).Advance(n)
		P(&b).Advance(n)
		assert.True(t, P(&a).Equal(b))
		assert.Equal(t, *P(&a).Deref(), *P(&b).Deref())
	})

	s.Test("advancing one by one equals advancing at once", func(t *testcase.T) {
		var (
			a = mk(t)
			b = a
			n = t.Random.IntBetween(2, 5)
		)
		P(&a).Advance(n)
		for i := 0; i < n; i++ {
			P(&b).Advance(1)
		}
		assert.True(t, P(&a).Equal(b))
	})

	return s.AsSuite(fmt.Sprintf("forward cursor.Core[%s]", reflectkit.TypeOf[V]().String()))
}

// Bidirectional validates cores that can step backwards.
func Bidirectional[V any, C any, P cursor.CorePtr[V, C]](mk func(tb testing.TB) C, opts ...Option[V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[V]](opts)

	Forward[V, C, P](mk, c).Spec(s)

	s.Test("the declared capability tag grants stepping backwards", func(t *testcase.T) {
		core := mk(t)
		tag := P(&core).Tag()
		assert.True(t, tag == cursor.Bidirectional || tag == cursor.RandomAccess)
	})

	s.Test("a forward advance is undone by its negative counterpart", func(t *testcase.T) {
		var (
			core = mk(t)
			pre  = core
			n    = t.Random.IntBetween(1, 7)
		)
		P(&core).Advance(n)
		P(&core).Advance(-n)
		assert.True(t, P(&core).Equal(pre))
	})

	return s.AsSuite(fmt.Sprintf("bidirectional cursor.Core[%s]", reflectkit.TypeOf[V]().String()))
}

// RandomAccess validates cores that measure the distance between positions.
func RandomAccess[V any, C any, P cursor.RandomAccessCorePtr[V, C]](mk func(tb testing.TB) C, opts ...Option[V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[V]](opts)

	Bidirectional[V, C, P](mk, c).Spec(s)

	s.Test("the declared capability tag is random access", func(t *testcase.T) {
		core := mk(t)
		assert.Equal(t, cursor.RandomAccess, P(&core).Tag())
	})

	s.Test("the distance to itself is zero", func(t *testcase.T) {
		core := mk(t)
		cp := core
		assert.Equal(t, 0, P(&core).Difference(cp))
	})

	s.Test("the distance to an advanced copy is the advanced amount", func(t *testcase.T) {
		var (
			a = mk(t)
			b = a
			n = t.Random.IntBetween(1, 7)
		)
		P(&b).Advance(n)
		assert.Equal(t, n, P(&b).Difference(a))
		assert.Equal(t, -n, P(&a).Difference(b))
	})

	return s.AsSuite(fmt.Sprintf("cursor.RandomAccessCore[%s]", reflectkit.TypeOf[V]().String()))
}

// Option configures the contracts of the cursor port.
type Option[V any] interface {
	option.Option[Config[V]]
}

// WithValue sets the constructor of the values the laws store into elements.
func WithValue[V any](fn func(tb testing.TB) V) Option[V] {
	return option.Func[Config[V]](func(c *Config[V]) {
		c.MakeValue = fn
	})
}

// Config is the configuration of the contracts of the cursor port.
type Config[V any] struct {
	// MakeValue creates a value that the write through law can store in an element.
	// Defaults to a random value of V.
	MakeValue func(testing.TB) V
}

var _ Option[any] = Config[any]{}

func (c Config[V]) Configure(o *Config[V]) {
	o.MakeValue = zerokit.Coalesce(c.MakeValue, o.MakeValue)
}

func (c Config[V]) makeValue(tb testing.TB) V {
	if c.MakeValue != nil {
		return c.MakeValue(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[V]()).(V)
}
