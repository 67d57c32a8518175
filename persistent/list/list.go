package list

import (
	"iter"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// List is a handle on a chain of shared, immutable nodes. The zero value
// is an empty list.
type List[T any] struct {
	props
	head *node[T]
}

type props struct {
	name string
}

// Option is a type to help initializing lists at creation time.
type Option func(props) props

// Named is an option to label a list. The label is inherited by all lists
// derived from it and shows up in traces and dumps.
func Named(name string) Option {
	return func(p props) props {
		p.name = name
		return p
	}
}

// New creates an empty list with options, if you need any.
func New[T any](opts ...Option) List[T] {
	l := List[T]{}
	for _, option := range opts {
		l.props = option(l.props)
	}
	return l
}

// Of creates a list of elements xs, with xs[0] at the head. Only the returned
// list holds a count on its head node.
func Of[T any](xs ...T) List[T] {
	var head *node[T]
	for i := len(xs) - 1; i >= 0; i-- {
		head = &node[T]{elem: xs[i], next: head, refs: 1}
	}
	return List[T]{head: head}
}

// --- API -------------------------------------------------------------------

// Prepend returns a new list with e in front of the elements of l.
// l remains unchanged.
func (l List[T]) Prepend(e T) List[T] {
	l.assertLive()
	return List[T]{props: l.props, head: newNode(e, l.head)}
}

// Tail returns a new list with all elements of l but the first one.
// The tail of an empty list is an empty list. l remains unchanged.
func (l List[T]) Tail() List[T] {
	l.assertLive()
	if l.head == nil {
		return List[T]{props: l.props}
	}
	return List[T]{props: l.props, head: l.head.next.acquire()}
}

// Head returns the first element of l, or Nothing for an empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	l.assertLive()
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// Clone returns a new handle on the nodes of l. Both l and the clone have
// to be released.
func (l List[T]) Clone() List[T] {
	l.assertLive()
	return List[T]{props: l.props, head: l.head.acquire()}
}

// IsEmpty is true for a list without elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the elements of l.
func (l List[T]) Len() int {
	l.assertLive()
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		cnt++
	}
	return cnt
}

// Name returns the label of l.
func (l List[T]) Name() string {
	return l.name
}

// RefCount returns the number of references to the head node of l,
// or 0 for an empty list.
func (l List[T]) RefCount() int {
	if l.head == nil {
		return 0
	}
	return l.head.refs
}

// Release gives up l's count on its head node, freeing all nodes which are
// not referenced from elsewhere. Afterwards l is empty. Releasing an empty
// list does nothing. It returns the number of nodes freed.
func (l *List[T]) Release() int {
	if l.head == nil {
		return 0
	}
	head := l.head
	l.head = nil
	freed, survivor := releaseChain(head)
	if survivor != nil {
		tracer().Debugf("release %q: freed %d nodes, stopped at shared node %v", l.name, freed, survivor)
	} else {
		tracer().Debugf("release %q: freed %d nodes", l.name, freed)
	}
	return freed
}

// All returns an iterator over the elements of l, head to tail.
// Every call of the iterator starts again at the head.
func (l List[T]) All() iter.Seq[T] {
	l.assertLive()
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			assertThat(!n.freed, "list %q iterated after release", l.name)
			if !yield(n.elem) {
				return
			}
		}
	}
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(n.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (l List[T]) assertLive() {
	assertThat(l.head == nil || !l.head.freed, "list %q used after its nodes have been freed", l.name)
}
