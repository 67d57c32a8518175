package exclusive

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/lists/maybe"
)

// node is owned either by a chain's head slot or by the next-link of
// exactly one other node.
type node[T any] struct {
	elem T
	next *node[T]
}

type props struct {
	pool *sync.Pool // optional pool used to create/release chain nodes
	name string     // label for traces
}

// Chain is a singly linked list with exclusively owned nodes.
// The zero value is an empty chain ready to use.
type Chain[T any] struct {
	props
	head *node[T]
	len  int
}

// New creates a chain with options, if you need any.
//
//     c := exclusive.New[string](exclusive.Named("todo"))
//
func New[T any](opts ...Option) *Chain[T] {
	c := &Chain[T]{}
	for _, option := range opts {
		c.props = option(c.props)
	}
	return c
}

// Option is a type to help initializing chains at creation time.
type Option func(props) props

// Pooled is an option to recycle chain nodes through a pool. Popped and
// dropped nodes are put back into the pool, pushes take nodes from it.
// Chains created by SpliceAt share the pool of their origin.
func Pooled(pool *sync.Pool) Option {
	return func(p props) props {
		p.pool = pool
		return p
	}
}

// Named is an option to label a chain in trace output.
func Named(name string) Option {
	return func(p props) props {
		p.name = name
		return p
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of chain c.
func (c *Chain[T]) Len() int {
	return c.len
}

// IsEmpty is true for a chain without nodes.
func (c *Chain[T]) IsEmpty() bool {
	return c.head == nil
}

// Push puts e in front of the chain.
func (c *Chain[T]) Push(e T) {
	n := c.alloc()
	n.elem = e
	n.next = c.head
	c.head = n
	c.len++
}

// Pop removes the first element of the chain and returns it,
// or Nothing if the chain is empty.
func (c *Chain[T]) Pop() maybe.Maybe[T] {
	n := c.head
	if n == nil {
		return maybe.Nothing[T]()
	}
	c.head = n.next
	c.len--
	e := n.elem
	c.release(n)
	return maybe.Just(e)
}

// Peek returns the first element of the chain without removing it.
func (c *Chain[T]) Peek() maybe.Maybe[T] {
	if c.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(c.head.elem)
}

// PeekMut returns a pointer to the first element of the chain, allowing
// clients to modify it in place. The pointer is valid until the head node
// is popped.
func (c *Chain[T]) PeekMut() maybe.Maybe[*T] {
	if c.head == nil {
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&c.head.elem)
}

// SpliceAt cuts the chain behind the first element matching p.
// The matched node stays in c, all of its successors are moved to a new
// chain, which is returned. If the matched node is the last one, the new
// chain is empty. If no element matches, Nothing is returned and c is left
// unchanged.
func (c *Chain[T]) SpliceAt(p lists.Predicate[T]) maybe.Maybe[*Chain[T]] {
	cursor := &c.head // the one and only cursor, pointing to the link under inspection
	for kept := 1; *cursor != nil; kept++ {
		n := *cursor
		if p(n.elem) {
			rest := &Chain[T]{props: c.props, head: n.next, len: c.len - kept}
			n.next = nil
			c.len = kept
			tracer().Debugf("chain %q spliced after position %d, %d nodes moved", c.name, kept-1, rest.len)
			return maybe.Just(rest)
		}
		cursor = &n.next
	}
	return maybe.Nothing[*Chain[T]]()
}

// SpliceAtElem cuts a chain behind the first element equal to e.
// See Chain.SpliceAt.
func SpliceAtElem[T comparable](c *Chain[T], e T) maybe.Maybe[*Chain[T]] {
	return c.SpliceAt(lists.Equal(e))
}

// Merge appends all nodes of other to the end of c. Afterwards other is empty.
// If c is empty, it takes over the nodes of other without walking them.
// Merging a chain with itself does nothing.
func (c *Chain[T]) Merge(other *Chain[T]) {
	if other == nil || other == c || other.head == nil {
		return
	}
	cursor := &c.head
	for *cursor != nil {
		cursor = &(*cursor).next
	}
	*cursor = other.head
	c.len += other.len
	tracer().Debugf("chain %q merged %d nodes from %q", c.name, other.len, other.name)
	other.head, other.len = nil, 0
}

// Drop removes all nodes of c, unlinking them one after the other from
// head to tail. Afterwards c is an empty chain and may be used again.
func (c *Chain[T]) Drop() {
	n := c.head
	count := c.len
	c.head, c.len = nil, 0
	for n != nil {
		next := n.next
		c.release(n)
		n = next
		count--
	}
	assertThat(count == 0, "length of dropped chain off by %d", count)
}

func (c *Chain[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := c.head; n != nil; n = n.next {
		if n != c.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Node allocation -------------------------------------------------------

func (c *Chain[T]) alloc() *node[T] {
	if c.pool != nil {
		if n, ok := c.pool.Get().(*node[T]); ok {
			return n
		}
	}
	return &node[T]{}
}

// release cleans up a node no longer owned by any chain.
func (c *Chain[T]) release(n *node[T]) {
	*n = node[T]{}
	if c.pool != nil {
		c.pool.Put(n)
	}
}
