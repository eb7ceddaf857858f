package bst

// Tree - unbalanced binary search tree ordered by a LessFunc.
//
// The zero value is not usable; build trees with New or NewFunc. A Tree
// must not be mutated concurrently, and visitors must not mutate the tree
// they are walking.
type Tree[T any] struct {
	root *node[T]
	less LessFunc[T]
}

// newTree returns a tree with 0 nodes.
func newTree[T any](less LessFunc[T]) *Tree[T] {
	return &Tree[T]{root: nil, less: less}
}

// equal reports whether neither value sorts before the other.
func (t *Tree[T]) equal(a, b T) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// Insert adds value as a new leaf. Values that compare equal to an existing
// one are kept and placed in its right subtree.
func (t *Tree[T]) Insert(value T) {
	t.insertHelper(&t.root, value)
}

// insertHelper is a helper function for Insert.
func (t *Tree[T]) insertHelper(currentRef **node[T], value T) {
	for *currentRef != nil {
		current := *currentRef
		if t.less(value, current.value) {
			currentRef = &current.left
		} else {
			currentRef = &current.right
		}
	}
	*currentRef = newLeafNode(value)
}

// Remove deletes one node holding a value equal to value. It reports
// whether a node was removed; removing an absent value is a no-op.
func (t *Tree[T]) Remove(value T) bool {
	return t.removeHelper(&t.root, value)
}

// removeHelper is a helper function of Remove.
func (t *Tree[T]) removeHelper(currentRef **node[T], key T) bool {
	for *currentRef != nil {
		current := *currentRef
		switch {
		case t.less(key, current.value):
			currentRef = &current.left
		case t.less(current.value, key):
			currentRef = &current.right
		default:
			t.unlink(currentRef)
			return true
		}
	}
	return false
}

// unlink removes the node stored at ref and splices the tree back together.
func (t *Tree[T]) unlink(ref **node[T]) {
	current := *ref
	switch {
	case current.left == nil:
		*ref = current.right
	case current.right == nil:
		*ref = current.left
	default:
		// The successor is the leftmost node of the right subtree and has
		// no left child, so it is spliced out by its right child.
		succRef := &current.right
		for (*succRef).left != nil {
			succRef = &(*succRef).left
		}
		succ := *succRef
		current.value = succ.value
		*succRef = succ.right
	}
}

// HasData reports whether the tree holds a value equal to value.
func (t *Tree[T]) HasData(value T) bool {
	return t.searchHelper(t.root, value) != nil
}

// searchHelper is a helper function for HasData.
func (t *Tree[T]) searchHelper(current *node[T], value T) *node[T] {
	for current != nil {
		if t.equal(value, current.value) {
			return current
		}
		if t.less(value, current.value) {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil
}

// Min returns the smallest value, or false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if n := t.root.minimum(); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Max returns the largest value, or false if the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if n := t.root.maximum(); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Size returns the number of values in the tree. It walks the whole tree.
func (t *Tree[T]) Size() int {
	size := 0
	t.walk(PreOrder, func(T) bool {
		size++
		return true
	})
	return size
}

// Height returns the number of levels in the tree.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every value.
func (t *Tree[T]) Clear() {
	t.root = nil
}
