package bst

// Option configures a Tree built by New.
type Option[T any] func(t *Tree[T])

// WithLess replaces the natural ordering, e.g. to sort in reverse or by a
// derived key. Passing nil makes New panic with ErrNilLess.
func WithLess[T any](less LessFunc[T]) Option[T] {
	return func(t *Tree[T]) {
		t.less = less
	}
}
