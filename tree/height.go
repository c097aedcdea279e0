package tree

import (
	"math"

	"linkedbst/container"
)

// Height returns the number of edges on the longest root-to-leaf path: -1
// for an empty tree and 0 for a single node.
//
// It walks the tree level by level, so deep, skewed trees do not grow the
// goroutine stack.
func (t *OrderedTree[T]) Height() int {
	if t.root == nil {
		return -1
	}
	q := container.NewQueue[*node[T]]()
	q.Push(t.root)
	height := -1
	for !q.IsEmpty() {
		height++
		for range q.Len() {
			n, _ := q.Pop()
			if n.left != nil {
				q.Push(n.left)
			}
			if n.right != nil {
				q.Push(n.right)
			}
		}
	}
	return height
}

// IsBalanced reports whether Height() < 2*log2(Size()+1) - 1. This is only a
// check: the tree never balances itself. An empty tree is not balanced
// under this bound.
func (t *OrderedTree[T]) IsBalanced() bool {
	bound := 2*math.Log2(float64(t.size+1)) - 1
	return float64(t.Height()) < bound
}
