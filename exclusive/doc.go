/*
Package exclusive implements a singly linked chain where every node has
exactly one owner: either the chain's head slot or the next-link of exactly
one predecessor. Nodes are never aliased.

Besides stack operations (Push, Pop, Peek) the chain may be cut behind a
matching element (SpliceAt) and extended by another chain (Merge). Both walk
the chain with a single cursor which is re-pointed one link at a time; at no
point do two live handles point into the chain:

    c := exclusive.New[int]()
    for i := 5; i > 0; i-- {
        c.Push(i)                           // 1 2 3 4 5
    }
    rest := c.SpliceAt(lists.Equal(3))      // c = 1 2 3, rest = Just(4 5)
    r, _ := rest.Get()
    c.Merge(r)                              // c = 1 2 3 4 5, r is empty

The matched node stays in the original chain; only its successors move.

Dropping a chain unlinks its nodes one by one from head to tail, so stack
usage does not depend on the length of the chain.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exclusive

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.exclusive'.
func tracer() tracing.Trace {
	return tracing.Select("lists.exclusive")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("exclusive: "+msg, msgargs...)
		panic(msg)
	}
}
