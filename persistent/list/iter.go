package list

// Iterator walks the elements of a list. It borrows the list's nodes and is
// valid only as long as the list it was created from has not been released.
//
//     it := l.Iterator()
//     for it.Next() {
//         fmt.Println(it.Value())
//     }
//
type Iterator[T any] struct {
	list    List[T]
	current *node[T]
	started bool
}

// Iterator creates an iterator for l. The iterator is not valid until Next() is called.
func (l List[T]) Iterator() *Iterator[T] {
	l.assertLive()
	return &Iterator[T]{list: l}
}

// Next moves to the next element and returns false at the end of the list.
func (it *Iterator[T]) Next() bool {
	if !it.started {
		it.started = true
		it.current = it.list.head
	} else if it.current != nil {
		it.current = it.current.next
	}
	if it.current == nil {
		return false
	}
	assertThat(!it.current.freed, "list %q iterated after release", it.list.name)
	return true
}

// Value returns the current element. It must not be called before Next()
// or after Next() returned false.
func (it *Iterator[T]) Value() T {
	assertThat(it.current != nil, "iterator of list %q is not valid", it.list.name)
	return it.current.elem
}

// Reset restarts iteration at the head of the list.
func (it *Iterator[T]) Reset() {
	it.current, it.started = nil, false
}
