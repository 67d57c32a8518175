package deque

import (
	"errors"
)

// Contract violations. The deque panics with an error wrapping one of these.
var (
	ErrSharedAtRemoval        = errors.New("node is shared at removal")
	ErrBorrowedAtRemoval      = errors.New("node is borrowed at removal")
	ErrAlreadyBorrowed        = errors.New("element is already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("element is already mutably borrowed")
	ErrBorrowReleased         = errors.New("borrow has been released")
)

// ErrInconsistentLinks is reported by Deque.Check.
var ErrInconsistentLinks = errors.New("deque links are inconsistent")
