package deque

import (
	"github.com/tidwall/hashmap"
)

// handle addresses a node in the node table. Handles are issued in
// ascending order and never reused; 0 is the nil handle.
type handle uint64

const nilHandle handle = 0

// dnode is a deque node. Its fields are reached through the node table only.
type dnode[T any] struct {
	elem   T
	prev   handle // non-owning
	next   handle // owning
	strong int    // head/tail slots, predecessor's next-link and NodeRefs
	pinned int    // NodeRefs held by clients
	borrow int    // number of shared borrows, or -1 for an exclusive borrow
}

// table holds the nodes of a deque.
type table[T any] struct {
	nodes *hashmap.Map[handle, *dnode[T]]
	last  handle // last handle issued
}

func (t *table[T]) lazyInit(capacity int) {
	if t.nodes == nil {
		t.nodes = hashmap.New[handle, *dnode[T]](capacity)
	}
}

// alloc creates a node without any strong references.
func (t *table[T]) alloc(e T) handle {
	t.last++
	t.nodes.Set(t.last, &dnode[T]{elem: e})
	return t.last
}

func (t *table[T]) node(h handle) *dnode[T] {
	assertThat(h != nilHandle, "attempt to dereference nil handle")
	n, ok := t.nodes.Get(h)
	assertThat(ok, "dangling handle %d", h)
	return n
}

// own counts a new strong reference to the node at h.
func (t *table[T]) own(h handle) handle {
	if h != nilHandle {
		t.node(h).strong++
	}
	return h
}

// disown drops a strong reference to the node at h. Nodes are not freed
// here; they leave the table by extract only.
func (t *table[T]) disown(h handle) {
	if h != nilHandle {
		n := t.node(h)
		n.strong--
		assertThat(n.strong >= 0, "strong count of node %d dropped below zero", h)
	}
}

// extract removes the node at h from the table and returns its element.
// The caller must hold the last strong reference to the node.
func (t *table[T]) extract(h handle) T {
	n := t.node(h)
	if n.strong != 1 {
		fail(ErrSharedAtRemoval, h)
	}
	assertThat(n.prev == nilHandle && n.next == nilHandle, "node %d still linked at removal", h)
	t.nodes.Delete(h)
	e := n.elem
	*n = dnode[T]{}
	return e
}

func (t *table[T]) size() int {
	if t.nodes == nil {
		return 0
	}
	return t.nodes.Len()
}
