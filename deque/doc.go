/*
Package deque implements a doubly linked double-ended queue whose nodes are
reachable from both directions.

Nodes live in a node table and are addressed by stable handles, which are
never reused. Links between nodes carry an ownership tag:

    next   owning; counted as a strong reference to the successor
    prev   non-owning back-reference; never counted

The deque's own head and tail slots are strong references as well. Apart
from them, the only way to hold a strong reference to a node is a NodeRef,
obtained from Front or Back. Removing a node hands its element to the caller
by value, which is only sound if the deque is the node's sole owner at that
moment. Popping a node which is still held by a NodeRef is a programming
error and panics with ErrSharedAtRemoval.

Elements are accessed through borrow cells, checked at runtime:

    r := d.PeekFront()          // Maybe[*Ref[T]], shared borrow
    w := d.PeekBackMut()        // Maybe[*RefMut[T]], exclusive borrow

Any number of shared borrows of a node may coexist; an exclusive borrow
excludes all others. A conflicting borrow panics immediately. Borrows end
with Release. These checks guard against conflicting accesses from a single
goroutine; the deque is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.deque'.
func tracer() tracing.Trace {
	return tracing.Select("lists.deque")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}

// fail panics with a contract violation err, which clients recovering from
// the panic may test with errors.Is.
func fail(err error, h handle) {
	tracer().Errorf("deque: %v (node %d)", err, h)
	panic(fmt.Errorf("deque: %w (node %d)", err, h))
}
