package list

import "fmt"

// node is immutable after construction, apart from its bookkeeping.
type node[T any] struct {
	elem  T
	next  *node[T]
	refs  int  // number of list heads and next-links pointing here
	freed bool // set once refs dropped to zero
}

func newNode[T any](e T, next *node[T]) *node[T] {
	n := &node[T]{elem: e, next: next, refs: 1}
	next.acquire() // new next-link
	return n
}

func (n *node[T]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("%v#%d", n.elem, n.refs)
}

// acquire counts a new reference to n. Nil nodes are ignored.
func (n *node[T]) acquire() *node[T] {
	if n == nil {
		return nil
	}
	assertThat(!n.freed, "attempt to reference a freed node %v", n.elem)
	n.refs++
	return n
}

// releaseChain drops one reference to n. If this was the last one, n is
// freed and the reference it holds to its successor is dropped as well,
// and so on down the chain. The walk stops at the first node which
// remains referenced. It returns the number of nodes freed and the
// surviving node, if any.
func releaseChain[T any](n *node[T]) (int, *node[T]) {
	freed := 0
	for n != nil {
		assertThat(!n.freed && n.refs > 0, "double release of node %v", n.elem)
		n.refs--
		if n.refs > 0 {
			return freed, n
		}
		next := n.next
		var zero T
		n.elem, n.next, n.freed = zero, nil, true
		freed++
		n = next
	}
	return freed, nil
}
