/*
Package lists is a small collection of linked lists, each one built around a
different discipline of owning its nodes.

   exclusive         every node is owned by exactly one predecessor (or the head)
   persistent/list   nodes are immutable and reference-counted; list values share suffixes
   deque             doubly linked; nodes live in a node table and are borrowed at runtime

None of the lists is safe for concurrent use. Empty lists and failed searches
are reported as maybe.Nothing, never as an error. Violations of a list's
ownership contract are programming errors and panic.

This package holds a few helpers shared by all of them, mostly predicates
for searching a chain.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lists

import "gopkg.in/typ.v4"

// Predicate tests an element of a list.
type Predicate[T any] func(T) bool

// Equal returns a predicate matching elements equal to x.
func Equal[T comparable](x T) Predicate[T] {
	return func(e T) bool {
		return e == x
	}
}

// AtLeast returns a predicate matching elements greater than or equal to x.
func AtLeast[T typ.Ordered](x T) Predicate[T] {
	return func(e T) bool {
		return typ.Compare(e, x) >= 0
	}
}

// Not negates a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(e T) bool {
		return !p(e)
	}
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
