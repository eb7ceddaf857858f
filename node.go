package bst

// node is a single tree node. Each node owns its children exclusively;
// there are no parent links.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// newLeafNode creates a node without children.
func newLeafNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// isLeaf reports whether the node has no children.
func (n *node[T]) isLeaf() bool { return n.left == nil && n.right == nil }

// minimum returns the leftmost node of the subtree rooted at n.
func (n *node[T]) minimum() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
func (n *node[T]) maximum() *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// height returns the number of nodes on the longest root-to-leaf path.
// It walks level by level, so degenerate trees don't grow the call stack.
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}

	h := 0
	level := []*node[T]{n}
	for len(level) > 0 {
		h++
		next := level[:0:0]
		for _, cur := range level {
			if cur.left != nil {
				next = append(next, cur.left)
			}
			if cur.right != nil {
				next = append(next, cur.right)
			}
		}
		level = next
	}
	return h
}
