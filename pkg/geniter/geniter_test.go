package geniter_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit/pkg/geniter"
	"go.llib.dev/cursorkit/port/cursor/cursorcontract"
)

func ExampleNew() {
	var n int
	counter := geniter.New(func() int {
		n++
		return n
	})

	counter.Inc()
	counter.Inc()

	fmt.Println(counter.Value())
	// Output: 2
}

func ExampleCore_Reached() {
	var n int
	it := geniter.New(func() int {
		n++
		return n
	})

	for !it.Core.Reached(3) {
		it.Inc()
	}

	fmt.Println(it.Value())
	// Output: 3
}

func TestIter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the iterator starts out on the zero value of the element type", func(t *testcase.T) {
		it := geniter.New(func() string { return "generated" })

		assert.Equal(t, "", it.Value())
	})

	s.Test("advancing invokes the generator and keeps its return value", func(t *testcase.T) {
		var calls int
		it := geniter.New(func() int {
			calls++
			return calls
		})

		it.Inc()
		assert.Equal(t, 1, it.Value())
		assert.Equal(t, 1, calls)

		it.Core.Advance(3)
		assert.Equal(t, 4, it.Value())
		assert.Equal(t, 4, calls)
	})

	s.Test("advancing by zero invokes nothing and moves nothing", func(t *testcase.T) {
		var calls int
		it := geniter.New(func() int {
			calls++
			return calls
		})

		it.Core.Advance(0)

		assert.Equal(t, 0, calls)
		assert.Equal(t, 0, it.Value())
	})

	s.Test("dereferencing repeatedly does not invoke the generator", func(t *testcase.T) {
		var calls int
		it := geniter.New(func() int {
			calls++
			return calls
		})

		it.Inc()
		assert.Equal(t, it.Value(), it.Value())
		assert.Equal(t, 1, calls)
	})

	s.Test("a negative advance panics", func(t *testcase.T) {
		it := geniter.New(func() int { return 0 })

		got := assert.Panic(t, func() { it.Core.Advance(-1) })

		err, ok := got.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, geniter.ErrNegativeAdvance)
	})

	s.Test("a generator panic propagates to the caller unchanged", func(t *testcase.T) {
		expErr := t.Random.Error()
		it := geniter.New(func() int { panic(expErr) })

		got := assert.Panic(t, func() { it.Inc() })

		err, ok := got.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, expErr)
	})

	s.Test("PostInc returns the copy taken before the generator ran", func(t *testcase.T) {
		var n int
		it := geniter.New(func() int {
			n++
			return n
		})

		it.Inc()
		old := it.PostInc()

		assert.Equal(t, 1, old.Value())
		assert.Equal(t, 2, it.Value())
	})

	s.Test("equality follows the last generated value", func(t *testcase.T) {
		var n int
		a := geniter.New(func() int {
			n++
			return n
		})
		b := a

		assert.True(t, a.Equal(b))

		a.Inc()

		assert.True(t, a.NotEqual(b))
	})

	s.Test("Reached compares against a plain value", func(t *testcase.T) {
		var n int
		it := geniter.New(func() int {
			n++
			return n
		})

		assert.True(t, it.Core.Reached(0))
		assert.False(t, it.Core.Reached(1))

		it.Inc()

		assert.True(t, it.Core.Reached(1))
	})
}

func TestCore_implementsCore(t *testing.T) {
	testcase.RunSuite(t, cursorcontract.Core[int](func(tb testing.TB) geniter.Core[int] {
		var n int
		return geniter.New(func() int {
			n++
			return n
		}).Core
	}))
}
