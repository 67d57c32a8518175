package deque

import "iter"

// All returns an iterator over the elements of d, front to back.
// d must not be modified during iteration.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := d.head; h != nilHandle; {
			n := d.node(h)
			if !yield(n.elem) {
				return
			}
			h = n.next
		}
	}
}

// Backward returns an iterator over the elements of d, back to front,
// following the non-owning back-references.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := d.tail; h != nilHandle; {
			n := d.node(h)
			if !yield(n.elem) {
				return
			}
			h = n.prev
		}
	}
}
