package bst

import (
	"fmt"

	"github.com/xlab/treeprint"
)

const emptyTree = "<empty>"

// String renders the shape of the tree, one node per line. Children are
// tagged "L" or "R"; a lone right child therefore stays distinguishable
// from a lone left one.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return emptyTree
	}
	printer := treeprint.NewWithRoot(fmt.Sprint(t.root.value))
	printNode(t.root, printer)
	return printer.String()
}

// printNode adds the children of current under branch. It recurses once
// per level, so it is meant for debugging reasonably shaped trees.
func printNode[T any](current *node[T], branch treeprint.Tree) {
	for _, child := range []struct {
		tag  string
		node *node[T]
	}{
		{"L", current.left},
		{"R", current.right},
	} {
		if child.node == nil {
			continue
		}
		label := fmt.Sprintf("%s %v", child.tag, child.node.value)
		if child.node.isLeaf() {
			branch.AddNode(label)
			continue
		}
		printNode(child.node, branch.AddBranch(label))
	}
}
