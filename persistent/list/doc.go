/*
Package list implements an immutable persistent singly linked list.

Prepend and Tail never copy the rest of the chain. Instead, list values share
suffixes: nodes are immutable once created and carry a reference count, which
equals the number of list heads and next-links pointing at them.

    l0 := list.New[int]()
    l1 := l0.Prepend(1)          // 1
    l2 := l1.Prepend(2)          // 2 1, shares node 1 with l1
    l3 := l2.Tail()              // 1, yet another handle on node 1

There is no mutable access to elements, as any node may be reachable from
more than one list value.

Lifecycle

Go does not tell a value when it goes out of scope, so each list value has to
be released explicitly. A list value is a counted handle on its head node;
copying it by assignment does not create a new handle, use Clone for that.
Intermediate values, as in

    l := list.New[int]().Prepend(1).Prepend(2)

hold counts of their own. Either release them or construct lists with Of.

Release drops the handle's count on the head node. Nodes whose count drops
to zero are freed, walking the chain iteratively, and the walk stops at the
first node which is still referenced from elsewhere.

Using a list value after its nodes have been freed is a programming error and
panics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.list'.
func tracer() tracing.Trace {
	return tracing.Select("lists.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
