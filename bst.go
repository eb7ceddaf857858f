package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Order - traversal order.
type Order uint8

// Traversal orders.
const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

// String returns the name of the order.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown"
}

// LessFunc reports whether a sorts strictly before b. It should implement
// a strict weak ordering; values for which neither less(a, b) nor
// less(b, a) holds are treated as equal.
type LessFunc[T any] func(a, b T) bool

// Visitor - callback function that is passed in traversals.
type Visitor[T any] func(value T)

// OrderedTree - binary search tree interface.
type OrderedTree[T any] interface {
	Insert(value T)
	Remove(value T) (removed bool)
	HasData(value T) bool
	InOrderTraversal(visit Visitor[T])
	PreOrderTraversal(visit Visitor[T])
	PostOrderTraversal(visit Visitor[T])
	Walk(order Order, visit Visitor[T])
	All() iter.Seq[T]
	Size() int
}

// Less returns a LessFunc that uses the '<' operator.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// New creates an empty tree ordered by '<' unless WithLess says otherwise.
func New[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	t := newTree(Less[T]())
	for _, opt := range opts {
		opt(t)
	}
	if t.less == nil {
		panic(wrapPanic(ErrNilLess))
	}
	return t
}

// NewFunc creates an empty tree ordered by less. It panics if less is nil.
func NewFunc[T any](less LessFunc[T]) *Tree[T] {
	if less == nil {
		panic(wrapPanic(ErrNilLess))
	}
	return newTree(less)
}

var _ OrderedTree[int] = (*Tree[int])(nil)
