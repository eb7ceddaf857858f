package bst_test

import (
	"fmt"
	"strings"

	"bst"
)

// ExampleTree builds the tree
//
//	    5
//	  /   \
//	 3     7
//	/ \   / \
//	1  4  6  8
//
// and prints its three traversal orders.
func ExampleTree() {
	tree := bst.New[int]()
	for _, v := range []int{5, 3, 7, 1, 4, 6, 8} {
		tree.Insert(v)
	}

	for _, order := range []bst.Order{bst.InOrder, bst.PreOrder, bst.PostOrder} {
		var out []string
		tree.Walk(order, func(v int) {
			out = append(out, fmt.Sprint(v))
		})
		fmt.Printf("%s: %s\n", order, strings.Join(out, " "))
	}

	// Output:
	// in-order: 1 3 4 5 6 7 8
	// pre-order: 5 3 1 4 7 6 8
	// post-order: 1 4 3 6 8 7 5
}

// ExampleTree_Remove removes a node with two children; its in-order
// successor takes its place.
func ExampleTree_Remove() {
	tree := bst.New[int]()
	for _, v := range []int{5, 3, 7, 1, 4, 6, 8} {
		tree.Insert(v)
	}

	fmt.Println(tree.Remove(5), tree.Remove(5))
	var out []string
	for v := range tree.All() {
		out = append(out, fmt.Sprint(v))
	}
	fmt.Println(strings.Join(out, " "))
	fmt.Println(tree.HasData(6), tree.HasData(5), tree.Size())

	// Output:
	// true false
	// 1 3 4 6 7 8
	// true false 6
}

// ExampleNewFunc orders strings by length, so strings of equal length
// match each other.
func ExampleNewFunc() {
	tree := bst.NewFunc[string](func(a, b string) bool { return len(a) < len(b) })
	for _, w := range []string{"pear", "fig", "banana", "kiwi"} {
		tree.Insert(w)
	}

	tree.InOrderTraversal(func(w string) {
		fmt.Println(w)
	})
	fmt.Println(tree.HasData("plum"))

	// Output:
	// fig
	// pear
	// kiwi
	// banana
	// true
}
