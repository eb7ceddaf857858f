package bst

import (
	"bufio"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// loadTestFile reads one value per non-empty line.
func loadTestFile(tb testing.TB, path string) []string {
	tb.Helper()

	file, err := os.Open(path)
	require.NoError(tb, err)
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	require.NoError(tb, scanner.Err())
	return words
}

// sampleTree inserts 5, 3, 7, 1, 4, 6, 8:
//
//	    5
//	  /   \
//	 3     7
//	/ \   / \
//	1  4  6  8
func sampleTree() *Tree[int] {
	tree := New[int]()
	for _, v := range []int{5, 3, 7, 1, 4, 6, 8} {
		tree.Insert(v)
	}
	return tree
}

func collect[T any](tree *Tree[T], order Order) []T {
	out := []T{}
	tree.Walk(order, func(v T) {
		out = append(out, v)
	})
	return out
}
