package list

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders a set of lists as a tree, making shared suffixes visible.
// Every node is printed once, together with its reference count; a list
// running into a node already printed for a previous list shows a
// reference to it and stops there.
//
//     .
//     ├── l1
//     │   └── 3#1
//     │       └── 2#2
//     │           └── 1#1
//     └── l2
//         └── ↪ 2#2
//
// Unnamed lists are labelled by their position in the argument list.
func Dump[T any](lists ...List[T]) string {
	printer := tp.New()
	seen := make(map[*node[T]]bool)
	for i, l := range lists {
		l.assertLive()
		label := l.name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		branch := printer.AddBranch(label)
		for n := l.head; n != nil; n = n.next {
			if seen[n] {
				branch.AddNode("↪ " + n.String())
				break
			}
			seen[n] = true
			branch = branch.AddBranch(n.String())
		}
	}
	return printer.String()
}
