package bst

import (
	"iter"
)

// All returns the values in ascending order. It is the same as InOrder.
func (t *Tree[T]) All() iter.Seq[T] {
	return t.InOrder()
}

// InOrder returns a sequence of the values in (left, node, right) order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return t.seq(InOrder)
}

// PreOrder returns a sequence of the values in (node, left, right) order.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return t.seq(PreOrder)
}

// PostOrder returns a sequence of the values in (left, right, node) order.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return t.seq(PostOrder)
}

// seq builds a restartable sequence; each range loop walks from the root
// the tree has at that moment.
func (t *Tree[T]) seq(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.walk(order, yield)
	}
}
