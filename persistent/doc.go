/*
Package persistent is the home of immutable persistent data structures.
"Modifying" one of them returns a new value and leaves the original
unchanged and usable.

Persistent structures share structure: a new incarnation reuses
most of the memory of the value it was derived from, so distinct
values physically share common parts. Sub-package list implements a
singly linked list whose values share common suffixes.

Values sharing structure have to agree on who may free a shared part. The
structures in this package count references to shared nodes explicitly, and
tearing down a value stops at the first node still in use by another value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
