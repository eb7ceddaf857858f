package bst

// InOrderTraversal calls visit for every value in ascending order.
func (t *Tree[T]) InOrderTraversal(visit Visitor[T]) {
	t.Walk(InOrder, visit)
}

// PreOrderTraversal calls visit for every node before its subtrees.
func (t *Tree[T]) PreOrderTraversal(visit Visitor[T]) {
	t.Walk(PreOrder, visit)
}

// PostOrderTraversal calls visit for every node after its subtrees.
func (t *Tree[T]) PostOrderTraversal(visit Visitor[T]) {
	t.Walk(PostOrder, visit)
}

// Walk calls visit once per value in the given order. It panics if visit
// is nil or order is not one of InOrder, PreOrder, PostOrder.
func (t *Tree[T]) Walk(order Order, visit Visitor[T]) {
	if visit == nil {
		panic(wrapPanic(ErrNilVisitor))
	}
	t.walk(order, func(v T) bool {
		visit(v)
		return true
	})
}

// walk iterates the tree with an explicit stack and stops as soon as
// yield returns false. It reports whether the walk ran to completion.
func (t *Tree[T]) walk(order Order, yield func(T) bool) bool {
	switch order {
	case InOrder:
		return walkInOrder(t.root, yield)
	case PreOrder:
		return walkPreOrder(t.root, yield)
	case PostOrder:
		return walkPostOrder(t.root, yield)
	}
	panic(wrapPanic(ErrUnknownOrder))
}

func walkInOrder[T any](root *node[T], yield func(T) bool) bool {
	var stack []*node[T]
	current := root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(current.value) {
			return false
		}
		current = current.right
	}
	return true
}

func walkPreOrder[T any](root *node[T], yield func(T) bool) bool {
	if root == nil {
		return true
	}
	stack := []*node[T]{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(current.value) {
			return false
		}
		// right first so that left is popped first
		if current.right != nil {
			stack = append(stack, current.right)
		}
		if current.left != nil {
			stack = append(stack, current.left)
		}
	}
	return true
}

func walkPostOrder[T any](root *node[T], yield func(T) bool) bool {
	var (
		stack []*node[T]
		last  *node[T]
	)
	current := root
	for current != nil || len(stack) > 0 {
		if current != nil {
			stack = append(stack, current)
			current = current.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			current = top.right
			continue
		}
		if !yield(top.value) {
			return false
		}
		last = top
		stack = stack[:len(stack)-1]
	}
	return true
}
