package tree

import (
	"slices"

	"github.com/goose-lang/primitive"
	"github.com/sirupsen/logrus"
)

// Rebalance rebuilds the tree into a minimal-height shape holding the same
// elements: height bits.Len(Size())-1. The elements are read in order, the
// tree is cleared, and each range's middle element becomes the root of the
// halves on either side of it.
//
// The new nodes are linked directly rather than added one by one, since Add
// would chain every run of equal elements down the right. Equal elements may
// therefore sit on either side of each other afterwards, as they can after
// Remove.
func (t *OrderedTree[T]) Rebalance() {
	if t.root == nil {
		return
	}
	debug := Log.IsLevelEnabled(logrus.DebugLevel)
	before := 0
	if debug {
		before = t.Height()
	}

	items := slices.Collect(t.Inorder())
	primitive.Assert(slices.IsSorted(items))
	t.Clear()
	t.root = buildMiddles(items)
	t.size = uint64(len(items))

	if debug {
		Log.WithFields(logrus.Fields{
			"size":   t.size,
			"before": before,
			"after":  t.Height(),
		}).Debug("rebalance")
	}
}

// buildMiddles links the sorted items into a tree rooted at their middle
// element. Recursion depth is logarithmic in len(items).
func buildMiddles[T any](items []T) *node[T] {
	if len(items) == 0 {
		return nil
	}
	mid := len(items) / 2
	return &node[T]{
		item:  items[mid],
		left:  buildMiddles(items[:mid]),
		right: buildMiddles(items[mid+1:]),
	}
}
