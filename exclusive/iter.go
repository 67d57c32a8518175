package exclusive

import "iter"

// All returns an iterator over the elements of c, head to tail.
// c must not be modified during iteration.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Mut returns an iterator yielding pointers to the elements of c, which
// may be used to modify elements in place.
func (c *Chain[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// Drain returns an iterator which pops elements from c while iterating.
// Stopping early leaves the remaining elements in c.
func (c *Chain[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			e, ok := c.Pop().Get()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
