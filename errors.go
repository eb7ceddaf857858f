package bst

import (
	"github.com/pkg/errors"
)

// Programming errors. The tree never returns them; it panics with a value
// whose cause is one of these.
var (
	ErrNilLess      = errors.New("bst: nil less function")
	ErrNilVisitor   = errors.New("bst: nil visitor")
	ErrUnknownOrder = errors.New("bst: unknown traversal order")
)

// wrapPanic attaches the caller's stack to err. errors.Cause recovers the
// sentinel.
func wrapPanic(err error) error {
	return errors.WithStack(err)
}
