package deque

import (
	"fmt"

	"github.com/npillmayer/lists/maybe"
)

// defaultCapacity specifies the initial size of the node table.
const defaultCapacity = 16

// Deque is a doubly linked double-ended queue. The zero value is an empty
// deque ready to use.
type Deque[T any] struct {
	props
	table[T]
	head handle // strong
	tail handle // strong
	len  int    // current number of nodes
}

type props struct {
	capacity int
}

// Option is a type to help initializing deques at creation time.
type Option func(props) props

// Capacity is an option to size the node table for n nodes upfront.
func Capacity(n int) Option {
	return func(p props) props {
		if n > 0 {
			p.capacity = n
		}
		return p
	}
}

// New creates a deque with options, if you need any.
func New[T any](opts ...Option) *Deque[T] {
	d := &Deque[T]{props: props{capacity: defaultCapacity}}
	for _, option := range opts {
		d.props = option(d.props)
	}
	d.lazyInit(d.capacity)
	return d
}

// Len returns the number of elements of deque d.
func (d *Deque[T]) Len() int {
	return d.len
}

// IsEmpty is true for a deque without elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.head == nilHandle
}

// PushFront inserts e at the front of d.
func (d *Deque[T]) PushFront(e T) {
	d.lazyInit(d.capacity)
	h := d.alloc(e)
	if d.head == nilHandle {
		d.head, d.tail = d.own(h), d.own(h)
	} else {
		n := d.node(h)
		n.next = d.head // takes over the head slot's reference to the old head
		d.node(d.head).prev = h
		d.head = d.own(h)
	}
	d.len++
}

// PushBack inserts e at the back of d.
func (d *Deque[T]) PushBack(e T) {
	d.lazyInit(d.capacity)
	h := d.alloc(e)
	if d.tail == nilHandle {
		d.head, d.tail = d.own(h), d.own(h)
	} else {
		old := d.node(d.tail)
		old.next = d.own(h)
		d.node(h).prev = d.tail
		d.disown(d.tail)
		d.tail = d.own(h)
	}
	d.len++
}

// PopFront removes the first element of d and returns it,
// or Nothing if d is empty.
//
// Popping a node which is borrowed or held by a NodeRef panics.
func (d *Deque[T]) PopFront() maybe.Maybe[T] {
	if d.head == nilHandle {
		return maybe.Nothing[T]()
	}
	h := d.head
	n := d.checkRemovable(h)
	if n.next == nilHandle { // last node
		d.disown(d.tail)
		d.tail = nilHandle
	} else {
		d.node(n.next).prev = nilHandle
	}
	d.head = n.next // hands n's reference to its successor over to the head slot
	n.next = nilHandle
	d.len--
	return maybe.Just(d.extract(h)) // with the former head slot's reference
}

// PopBack removes the last element of d and returns it,
// or Nothing if d is empty.
//
// Popping a node which is borrowed or held by a NodeRef panics.
func (d *Deque[T]) PopBack() maybe.Maybe[T] {
	if d.tail == nilHandle {
		return maybe.Nothing[T]()
	}
	h := d.tail
	n := d.checkRemovable(h)
	if n.prev == nilHandle { // last node
		d.disown(d.head)
		d.head = nilHandle
	} else {
		prev := d.node(n.prev)
		prev.next = nilHandle
		d.disown(h)
		d.tail = d.own(n.prev)
	}
	n.prev = nilHandle
	if d.head == nilHandle {
		d.tail = nilHandle
	}
	d.len--
	return maybe.Just(d.extract(h)) // with the former tail slot's reference
}

// Drop pops all elements of d, front to back.
func (d *Deque[T]) Drop() {
	cnt := 0
	for !d.PopFront().IsNothing() {
		cnt++
	}
	tracer().Debugf("dropped deque of %d elements", cnt)
}

// checkRemovable makes sure no client holds on to the node at h.
func (d *Deque[T]) checkRemovable(h handle) *dnode[T] {
	n := d.node(h)
	if n.borrow != 0 {
		fail(ErrBorrowedAtRemoval, h)
	}
	if n.pinned > 0 {
		fail(ErrSharedAtRemoval, h)
	}
	return n
}

// Check verifies the link structure of d: endpoints have no outward links,
// neighbours point at each other, walking forward from head reaches tail in
// Len()-1 steps, and strong counts match the links and slots pointing at
// each node.
func (d *Deque[T]) Check() error {
	if d.head == nilHandle || d.tail == nilHandle {
		if d.head != d.tail || d.len != 0 || d.size() != 0 {
			return fmt.Errorf("%w: empty deque with head=%d, tail=%d, len=%d, nodes=%d",
				ErrInconsistentLinks, d.head, d.tail, d.len, d.size())
		}
		return nil
	}
	if d.node(d.head).prev != nilHandle {
		return fmt.Errorf("%w: head has a predecessor", ErrInconsistentLinks)
	}
	if d.node(d.tail).next != nilHandle {
		return fmt.Errorf("%w: tail has a successor", ErrInconsistentLinks)
	}
	steps := 0
	for h := d.head; ; steps++ {
		if steps >= d.len {
			return fmt.Errorf("%w: no tail within %d steps from head", ErrInconsistentLinks, steps)
		}
		n := d.node(h)
		want := n.pinned + 1 // predecessor's next-link or head slot
		if h == d.tail {
			want++
		}
		if n.strong != want {
			return fmt.Errorf("%w: node %d has strong count %d, expected %d",
				ErrInconsistentLinks, h, n.strong, want)
		}
		if h == d.tail {
			break
		}
		if n.next == nilHandle || d.node(n.next).prev != h {
			return fmt.Errorf("%w: node %d and its successor disagree", ErrInconsistentLinks, h)
		}
		h = n.next
	}
	if steps != d.len-1 || d.size() != d.len {
		return fmt.Errorf("%w: walked %d steps from head to tail, len=%d, nodes=%d",
			ErrInconsistentLinks, steps, d.len, d.size())
	}
	return nil
}
