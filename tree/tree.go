// Package tree implements OrderedTree, a linked binary search tree that does
// not balance itself.
//
// Add stores an element equal to a node's element in its right subtree, so
// duplicates are allowed and an in-order traversal is sorted. The tree can be
// checked with IsBalanced and rebuilt into a minimal-height shape with
// Rebalance, but neither Add nor Remove changes the shape beyond the node
// they touch.
//
// An OrderedTree is not safe for concurrent use; callers that share one must
// synchronize access themselves.
package tree

import (
	"github.com/goose-lang/std"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// node owns its children; a node has at most one parent, which the
// algorithms track themselves.
type node[T any] struct {
	item  T
	left  *node[T]
	right *node[T]
}

// OrderedTree is a binary search tree of T ordered by < and ==. Its zero
// value is an empty tree ready to use.
//
// NaN is not a valid element: it compares unequal to everything, itself
// included, so a float tree holding one has no total order to keep.
type OrderedTree[T constraints.Ordered] struct {
	root *node[T]
	size uint64
}

func New[T constraints.Ordered]() *OrderedTree[T] {
	return &OrderedTree[T]{}
}

// From creates a tree holding items, added in the order given.
func From[T constraints.Ordered](items []T) *OrderedTree[T] {
	t := New[T]()
	for _, item := range items {
		t.Add(item)
	}
	return t
}

// Size returns the number of elements, counting duplicates.
func (t *OrderedTree[T]) Size() uint64 {
	return t.size
}

func (t *OrderedTree[T]) IsEmpty() bool {
	return t.size == 0
}

// Add inserts item, even if an equal element is already present.
func (t *OrderedTree[T]) Add(item T) {
	p := &t.root
	for *p != nil {
		if item < (*p).item {
			p = &(*p).left
		} else {
			p = &(*p).right
		}
	}
	*p = &node[T]{item: item}
	t.size = std.SumAssumeNoOverflow(t.size, 1)
}

// Clear drops every element.
func (t *OrderedTree[T]) Clear() {
	Log.WithFields(logrus.Fields{"size": t.size}).Debug("clear")
	t.root = nil
	t.size = 0
}
