package tree

import (
	"fmt"

	"github.com/goose-lang/primitive"
	"github.com/sirupsen/logrus"
)

// direction records which child slot of its parent a node occupies.
type direction int

const (
	leftChild direction = iota
	rightChild
)

// liftMax replaces top's element with the maximum element of its left
// subtree and splices the node that held it out of the tree.
//
// top must have a left child.
func liftMax[T any](top *node[T]) {
	primitive.Assert(top.left != nil)
	parent := top
	n := top.left
	for n.right != nil {
		parent = n
		n = n.right
	}
	top.item = n.item
	// n has no right child, so its left child takes its place
	if parent == top {
		top.left = n.left
	} else {
		parent.right = n.left
	}
}

// Remove deletes one element equal to item and returns the element that was
// stored. On an empty tree it returns the zero value and a nil error; on a
// non-empty tree without such an element it returns an error wrapping
// ErrNotFound and leaves the tree unchanged.
func (t *OrderedTree[T]) Remove(item T) (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, nil
	}

	// preRoot stands in as the root's parent so that removing the root
	// relinks the same way as removing any other node.
	preRoot := &node[T]{left: t.root}
	parent := preRoot
	dir := leftChild
	n := t.root
	for n != nil && n.item != item {
		parent = n
		if item < n.item {
			dir = leftChild
			n = n.left
		} else {
			dir = rightChild
			n = n.right
		}
	}
	if n == nil {
		Log.WithFields(logrus.Fields{"item": item}).Debug("remove: not found")
		return zero, fmt.Errorf("%w: %v", ErrNotFound, item)
	}

	removed := n.item
	if n.left != nil && n.right != nil {
		Log.WithFields(logrus.Fields{"item": item, "case": "two-children"}).Debug("remove")
		liftMax(n)
	} else {
		var child *node[T]
		if n.left == nil {
			Log.WithFields(logrus.Fields{"item": item, "case": "right-or-leaf"}).Debug("remove")
			child = n.right
		} else {
			Log.WithFields(logrus.Fields{"item": item, "case": "left-only"}).Debug("remove")
			child = n.left
		}
		if dir == leftChild {
			parent.left = child
		} else {
			parent.right = child
		}
	}

	primitive.Assert(t.size > 0)
	t.size--
	if t.IsEmpty() {
		t.root = nil
	} else {
		t.root = preRoot.left
	}
	return removed, nil
}
