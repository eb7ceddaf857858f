// Package bst implements an unbalanced binary search tree over any value
// type, ordered by a caller-supplied LessFunc.
//
// What:
//
//   - Insert adds a leaf; equal values are kept and go to the right subtree.
//   - Remove deletes one matching node (leaf, one child, or two children
//     via the in-order successor). Removing an absent value is a no-op.
//   - HasData searches by the ordering: a and b match when neither
//     less(a, b) nor less(b, a) holds.
//   - InOrderTraversal, PreOrderTraversal, PostOrderTraversal and Walk call
//     a visitor once per value; InOrder, PreOrder, PostOrder and All return
//     the same orders as iter.Seq.
//
// The tree keeps no size counter: Size walks the tree. Traversals use an
// explicit stack, so sorted input (which degrades the tree into a list)
// does not deepen the call stack.
//
// Errors:
//
// Nothing the tree does on valid input fails. A nil LessFunc, a nil
// Visitor or an unknown Order is a programming error and panics with an
// error whose cause (errors.Cause from github.com/pkg/errors) is
// ErrNilLess, ErrNilVisitor or ErrUnknownOrder.
//
// Complexity:
//
//   - Insert, Remove, HasData, Min, Max: O(h), h = height (O(n) worst case)
//   - traversals, Size, Height: O(n)
//
// A Tree is not safe for concurrent use; guard it with a mutex if several
// goroutines share it.
package bst
