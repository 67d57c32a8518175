package exclusive

import (
	"slices"
	"sync"
	"testing"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// chainOf builds a chain reading xs from left to right.
func chainOf[T any](xs ...T) *Chain[T] {
	c := New[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		c.Push(xs[i])
	}
	return c
}

func TestChainStackLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.exclusive")
	defer teardown()
	//
	c := New[int]()
	if !c.Pop().IsNothing() {
		t.Fatal("expected pop from empty chain to be Nothing")
	}
	c.Push(1)
	c.Push(2)
	c.Push(3)
	require.Equal(t, 3, c.Pop().WithDefault(0))
	require.Equal(t, 2, c.Pop().WithDefault(0))
	c.Push(4)
	c.Push(5)
	require.Equal(t, 5, c.Pop().WithDefault(0))
	require.Equal(t, 4, c.Pop().WithDefault(0))
	require.Equal(t, 1, c.Pop().WithDefault(0))
	require.True(t, c.Pop().IsNothing())
	require.Equal(t, 0, c.Len())
}

func TestChainReversesPushes(t *testing.T) {
	for _, n := range []int{1, 2, 17, 1000} {
		c := New[int]()
		for i := 0; i < n; i++ {
			c.Push(i)
		}
		for i := n - 1; i >= 0; i-- {
			e, ok := c.Pop().Get()
			if !ok || e != i {
				t.Fatalf("n=%d: expected pop to return %d, got (%d, %v)", n, i, e, ok)
			}
		}
		if !c.Pop().IsNothing() {
			t.Errorf("n=%d: expected final pop to be Nothing", n)
		}
	}
}

func TestChainPeek(t *testing.T) {
	c := New[int]()
	require.True(t, c.Peek().IsNothing())
	require.True(t, c.PeekMut().IsNothing())
	c.Push(10)
	c.Push(20)
	require.Equal(t, 20, c.Peek().WithDefault(0))
	if p, ok := c.PeekMut().Get(); ok {
		*p = 30
	}
	require.Equal(t, 30, c.Peek().WithDefault(0))
	c.Pop()
	p, ok := c.PeekMut().Get()
	require.True(t, ok)
	require.Equal(t, 10, *p)
}

func TestChainSplice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.exclusive")
	defer teardown()
	//
	c := chainOf(1, 2, 3, 4, 5)
	if !c.SpliceAt(lists.Equal(10)).IsNothing() {
		t.Error("expected splice at missing element to be Nothing")
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(c.All()))
	//
	rest, ok := SpliceAtElem(c, 3).Get()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(c.All()))
	require.Equal(t, []int{4, 5}, slices.Collect(rest.All()))
	require.Equal(t, 3, c.Len())
	require.Equal(t, 2, rest.Len())
	//
	c.Merge(rest)
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(c.All()))
	require.Equal(t, 5, c.Len())
	require.True(t, rest.IsEmpty())
	require.Equal(t, 0, rest.Len())
}

func TestChainSpliceBorders(t *testing.T) {
	t.Run("at last node", func(t *testing.T) {
		c := chainOf(5, 4, 3, 2, 1)
		rest, ok := SpliceAtElem(c, 1).Get()
		require.True(t, ok)
		require.True(t, rest.IsEmpty())
		require.True(t, rest.Pop().IsNothing())
		require.Equal(t, 5, c.Len())
	})
	t.Run("at first node", func(t *testing.T) {
		c := chainOf(5, 4, 3, 2, 1)
		rest, ok := SpliceAtElem(c, 5).Get()
		require.True(t, ok)
		require.Equal(t, "[5]", c.String())
		require.Equal(t, "[4 3 2 1]", rest.String())
		// break from between
		half, ok := SpliceAtElem(rest, 3).Get()
		require.True(t, ok)
		require.Equal(t, []int{4, 3}, slices.Collect(rest.Drain()))
		require.Equal(t, []int{2, 1}, slices.Collect(half.Drain()))
		require.True(t, rest.Pop().IsNothing())
		require.True(t, half.Pop().IsNothing())
	})
	t.Run("empty chain", func(t *testing.T) {
		c := New[int]()
		require.True(t, SpliceAtElem(c, 1).IsNothing())
	})
	t.Run("first match wins", func(t *testing.T) {
		c := chainOf(1, 7, 2, 8, 3)
		rest, ok := c.SpliceAt(lists.AtLeast(5)).Get()
		require.True(t, ok)
		require.Equal(t, "[1 7]", c.String())
		require.Equal(t, "[2 8 3]", rest.String())
	})
}

func TestChainMerge(t *testing.T) {
	t.Run("into empty", func(t *testing.T) {
		c := New[string]()
		other := chainOf("a", "b")
		head := other.head
		c.Merge(other)
		require.Same(t, head, c.head)
		require.Equal(t, 2, c.Len())
		require.True(t, other.IsEmpty())
	})
	t.Run("empty other", func(t *testing.T) {
		c := chainOf("a")
		c.Merge(New[string]())
		c.Merge(nil)
		require.Equal(t, "[a]", c.String())
	})
	t.Run("with itself", func(t *testing.T) {
		c := chainOf("a", "b")
		c.Merge(c)
		require.Equal(t, "[a b]", c.String())
		require.Equal(t, 2, c.Len())
	})
}

func TestChainIteration(t *testing.T) {
	c := chainOf(1, 2, 3)
	for p := range c.Mut() {
		*p *= 10
	}
	require.Equal(t, []int{10, 20, 30}, slices.Collect(c.All()))
	for e := range c.Drain() {
		if e == 20 {
			break
		}
	}
	require.Equal(t, []int{30}, slices.Collect(c.All()))
}

func TestChainPooled(t *testing.T) {
	var created int
	pool := &sync.Pool{New: func() any {
		created++
		return new(node[int])
	}}
	c := New[int](Pooled(pool), Named("pooled"))
	for i := 0; i < 10; i++ {
		c.Push(i)
	}
	rest, ok := SpliceAtElem(c, 5).Get()
	require.True(t, ok)
	require.Same(t, pool, rest.pool)
	rest.Drop()
	c.Drop()
	require.True(t, c.IsEmpty())
	c.Push(42)
	require.Equal(t, 42, c.Pop().WithDefault(0))
	require.LessOrEqual(t, created, 11)
}

func TestChainDropDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.exclusive")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	c := New[int]()
	for i := 0; i < 100000; i++ {
		c.Push(i)
	}
	c.Drop()
	if !c.IsEmpty() || c.Len() != 0 {
		t.Errorf("expected dropped chain to be empty, has %d nodes", c.Len())
	}
	c.Push(1)
	if c.Len() != 1 {
		t.Error("expected dropped chain to be usable again")
	}
}
