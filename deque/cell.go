package deque

import (
	"github.com/npillmayer/lists/maybe"
)

// Ref is a shared borrow of an element. It has to be released when no
// longer needed; until then the element may not be borrowed exclusively
// and its node may not be removed.
type Ref[T any] struct {
	d *Deque[T]
	h handle
}

// RefMut is an exclusive borrow of an element. It has to be released when
// no longer needed; until then the element may not be borrowed at all and
// its node may not be removed.
type RefMut[T any] struct {
	d *Deque[T]
	h handle
}

// PeekFront borrows the first element of d, or returns Nothing if d is empty.
// It panics if the element is borrowed exclusively.
func (d *Deque[T]) PeekFront() maybe.Maybe[*Ref[T]] {
	return d.borrowShared(d.head)
}

// PeekBack borrows the last element of d, or returns Nothing if d is empty.
// It panics if the element is borrowed exclusively.
func (d *Deque[T]) PeekBack() maybe.Maybe[*Ref[T]] {
	return d.borrowShared(d.tail)
}

// PeekFrontMut borrows the first element of d exclusively, or returns
// Nothing if d is empty. It panics if the element is borrowed.
func (d *Deque[T]) PeekFrontMut() maybe.Maybe[*RefMut[T]] {
	return d.borrowExclusive(d.head)
}

// PeekBackMut borrows the last element of d exclusively, or returns
// Nothing if d is empty. It panics if the element is borrowed.
func (d *Deque[T]) PeekBackMut() maybe.Maybe[*RefMut[T]] {
	return d.borrowExclusive(d.tail)
}

func (d *Deque[T]) borrowShared(h handle) maybe.Maybe[*Ref[T]] {
	if h == nilHandle {
		return maybe.Nothing[*Ref[T]]()
	}
	n := d.node(h)
	if n.borrow < 0 {
		fail(ErrAlreadyMutablyBorrowed, h)
	}
	n.borrow++
	return maybe.Just(&Ref[T]{d: d, h: h})
}

func (d *Deque[T]) borrowExclusive(h handle) maybe.Maybe[*RefMut[T]] {
	if h == nilHandle {
		return maybe.Nothing[*RefMut[T]]()
	}
	n := d.node(h)
	if n.borrow < 0 {
		fail(ErrAlreadyMutablyBorrowed, h)
	}
	if n.borrow > 0 {
		fail(ErrAlreadyBorrowed, h)
	}
	n.borrow = -1
	return maybe.Just(&RefMut[T]{d: d, h: h})
}

// Value returns the borrowed element.
func (r *Ref[T]) Value() T {
	if r.d == nil {
		fail(ErrBorrowReleased, r.h)
	}
	return r.d.node(r.h).elem
}

// Release ends the borrow. Releasing twice does nothing.
func (r *Ref[T]) Release() {
	if r.d == nil {
		return
	}
	r.d.node(r.h).borrow--
	r.d = nil
}

// Value returns the borrowed element.
func (r *RefMut[T]) Value() T {
	return *r.Ptr()
}

// Set replaces the borrowed element.
func (r *RefMut[T]) Set(e T) {
	*r.Ptr() = e
}

// Ptr returns a pointer to the borrowed element. The pointer must not be
// used after the borrow has been released.
func (r *RefMut[T]) Ptr() *T {
	if r.d == nil {
		fail(ErrBorrowReleased, r.h)
	}
	return &r.d.node(r.h).elem
}

// Release ends the borrow. Releasing twice does nothing.
func (r *RefMut[T]) Release() {
	if r.d == nil {
		return
	}
	r.d.node(r.h).borrow = 0
	r.d = nil
}

// --- Strong references -----------------------------------------------------

// NodeRef is a strong reference to a node of a deque, held outside of the
// deque. As long as it is not released, the node may not be removed from
// the deque.
type NodeRef[T any] struct {
	d *Deque[T]
	h handle
}

// Front returns a strong reference to the first node of d, or Nothing if d
// is empty.
func (d *Deque[T]) Front() maybe.Maybe[*NodeRef[T]] {
	return d.pin(d.head)
}

// Back returns a strong reference to the last node of d, or Nothing if d
// is empty.
func (d *Deque[T]) Back() maybe.Maybe[*NodeRef[T]] {
	return d.pin(d.tail)
}

func (d *Deque[T]) pin(h handle) maybe.Maybe[*NodeRef[T]] {
	if h == nilHandle {
		return maybe.Nothing[*NodeRef[T]]()
	}
	d.node(d.own(h)).pinned++
	return maybe.Just(&NodeRef[T]{d: d, h: h})
}

// Value returns the element of the referenced node.
func (r *NodeRef[T]) Value() T {
	if r.d == nil {
		fail(ErrBorrowReleased, r.h)
	}
	return r.d.node(r.h).elem
}

// Release drops the strong reference. Releasing twice does nothing.
func (r *NodeRef[T]) Release() {
	if r.d == nil {
		return
	}
	r.d.node(r.h).pinned--
	r.d.disown(r.h)
	r.d = nil
}
