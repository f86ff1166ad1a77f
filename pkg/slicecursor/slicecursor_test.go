package slicecursor_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/cursorkit/pkg/itertier"
	"go.llib.dev/cursorkit/pkg/slicecursor"
	"go.llib.dev/cursorkit/port/cursor/cursorcontract"
)

func ExampleStart() {
	vs := []int{10, 20, 30}

	it := itertier.NewRandom[int](slicecursor.Start(vs))
	it.Advance(2)

	fmt.Println(it.Value())
	// Output: 30
}

func TestCursor(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("At stands on the given index", func(t *testcase.T) {
		vs := []string{"a", "b", "c"}
		cur := slicecursor.At(vs, 1)

		assert.Equal(t, 1, cur.Index())
		assert.Equal(t, "b", *cur.Deref())
	})

	s.Test("Start stands on the first element", func(t *testcase.T) {
		vs := []string{"a", "b", "c"}
		cur := slicecursor.Start(vs)

		assert.Equal(t, 0, cur.Index())
		assert.Equal(t, "a", *cur.Deref())
	})

	s.Test("End stands one past the last element", func(t *testcase.T) {
		vs := []string{"a", "b", "c"}
		cur := slicecursor.End(vs)

		assert.Equal(t, len(vs), cur.Index())
	})

	s.Test("Advance moves the index by the given distance", func(t *testcase.T) {
		vs := make([]int, 10)
		cur := slicecursor.At(vs, 5)

		cur.Advance(3)
		assert.Equal(t, 8, cur.Index())

		cur.Advance(-4)
		assert.Equal(t, 4, cur.Index())
	})

	s.Test("dereferencing a sentinel position panics", func(t *testcase.T) {
		vs := []int{1, 2, 3}
		cur := slicecursor.End(vs)

		assert.NotNil(t, assert.Panic(t, func() {
			_ = *cur.Deref()
		}))
	})

	s.Test("copies share the backing slice", func(t *testcase.T) {
		var (
			vs  = []int{1, 2, 3}
			cur = slicecursor.Start(vs)
			cp  = cur
			exp = t.Random.Int()
		)
		cp.Advance(1)
		*cp.Deref() = exp

		assert.Equal(t, exp, vs[1])
		assert.Equal(t, 0, cur.Index())
	})

	s.Test("Equal compares the position index", func(t *testcase.T) {
		vs := []int{1, 2, 3}

		a := slicecursor.At(vs, 1)
		b := slicecursor.At(vs, 1)
		assert.True(t, a.Equal(b))

		b.Advance(1)
		assert.False(t, a.Equal(b))
	})

	s.Test("Difference is the signed index distance", func(t *testcase.T) {
		vs := make([]int, 10)
		var (
			a = slicecursor.At(vs, 2)
			b = slicecursor.At(vs, 7)
		)
		assert.Equal(t, 5, b.Difference(a))
		assert.Equal(t, -5, a.Difference(b))
	})
}

func TestCursor_implementsRandomAccessCore(t *testing.T) {
	testcase.RunSuite(t, cursorcontract.RandomAccess[int](func(tb testing.TB) slicecursor.Cursor[int] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntBetween(8, 16), t.Random.Int)
		return slicecursor.Start(vs)
	}))
}

func TestIter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the alias names the random access tier over a slice cursor", func(t *testcase.T) {
		vs := []int{1, 2, 3}
		var it slicecursor.Iter[int] = itertier.NewRandom[int](slicecursor.Start(vs))

		it.Advance(1)

		assert.Equal(t, 2, it.Value())
		assert.Equal(t, 1, it.Core.Index())
	})
}
