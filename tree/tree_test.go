package tree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// sample is the insertion sequence used throughout these tests. It builds
//
//	2
//	├── -1
//	│   └── -2
//	│       └── -32
//	└── 3
//	    └── 4 ── 4 ── 6 ── 6 ── 10 (each a right child)
var sample = []int{2, -1, 3, 4, 4, -2, 6, 6, 10, -32}

// checkTree asserts the structural invariants: every element of a node's left
// subtree is <= the node's element (strictly less if strict is set) and every
// element of its right subtree is >=, size counts the reachable nodes, and
// the root is absent iff the tree is empty.
//
// Only trees built purely with Add are strict; lifting a duplicate maximum
// during Remove, or splitting a run of duplicates during Rebalance, can leave
// an equal element in the left subtree.
func checkTree[T constraints.Ordered](t assert.TestingT, tr *OrderedTree[T], strict bool) bool {
	var count uint64
	var walk func(n *node[T], lo *T, hi *T) bool
	walk = func(n *node[T], lo *T, hi *T) bool {
		if n == nil {
			return true
		}
		count++
		if lo != nil && n.item < *lo {
			return false
		}
		if hi != nil && (*hi < n.item || (strict && n.item == *hi)) {
			return false
		}
		return walk(n.left, lo, &n.item) && walk(n.right, &n.item, hi)
	}
	ok := assert.True(t, walk(tr.root, nil, nil), "ordering invariant violated:\n%v", tr)
	ok = ok && assert.Equal(t, tr.size, count, "size does not match node count")
	ok = ok && assert.Equal(t, tr.size == 0, tr.root == nil, "root absent iff empty")
	return ok
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	tree := From(sample)
	assert.Equal(uint64(len(sample)), tree.Size())
	checkTree(t, tree, true)

	// shape: ties go right, so the second 4 and 6 hang off the first ones
	assert.Equal(2, tree.root.item)
	assert.Equal(-1, tree.root.left.item)
	assert.Equal(4, tree.root.right.right.item)
	assert.Equal(4, tree.root.right.right.right.item)
	assert.Nil(tree.root.right.right.left)
	assert.Equal(-32, tree.root.left.left.left.item)
}

func TestNew(t *testing.T) {
	assert := assert.New(t)
	tree := New[string]()
	assert.True(tree.IsEmpty())
	assert.Equal(uint64(0), tree.Size())
	assert.Nil(tree.root)

	tree.Add("pear")
	assert.False(tree.IsEmpty())
	assert.Equal(uint64(1), tree.Size())
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	tree := From(sample)

	for _, x := range sample {
		found, ok := tree.Find(x)
		assert.True(ok, "should find %d", x)
		assert.Equal(x, found)
		assert.True(tree.Contains(x))
	}

	_, ok := tree.Find(5)
	assert.False(ok)
	assert.False(tree.Contains(5))
	assert.False(tree.Contains(-100))
	assert.False(tree.Contains(100))

	assert.False(New[int]().Contains(0), "empty tree")
}

func TestFindStrings(t *testing.T) {
	assert := assert.New(t)
	tree := From([]string{"kiwi", "apple", "pear", "fig"})

	w, ok := tree.Find("fig")
	assert.True(ok)
	assert.Equal("fig", w)
	assert.False(tree.Contains("plum"))
}

func TestReplace(t *testing.T) {
	assert := assert.New(t)
	tree := From([]int{2, 1, 5})

	old, ok := tree.Replace(5, 7)
	assert.True(ok)
	assert.Equal(5, old)
	assert.True(tree.Contains(7))
	assert.False(tree.Contains(5))
	assert.Equal([]int{1, 2, 7}, slices.Collect(tree.Inorder()))

	old, ok = tree.Replace(1, 0)
	assert.True(ok)
	assert.Equal(1, old)
	assert.True(tree.Contains(0))

	_, ok = tree.Replace(9, 10)
	assert.False(ok)
	assert.Equal([]int{0, 2, 7}, slices.Collect(tree.Inorder()))
	assert.Equal(uint64(3), tree.Size())

	_, ok = New[int]().Replace(1, 2)
	assert.False(ok, "empty tree")
}

func TestHeight(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		items    []int
		expected int
	}{
		{nil, -1},
		{[]int{1}, 0},
		{[]int{2, 1, 3}, 1},
		{[]int{1, 2, 3}, 2},
		{[]int{3, 2, 1, 0}, 3},
		{[]int{5, 5, 5}, 2},
		{sample, 6},
	}

	for _, test := range tests {
		assert.Equal(test.expected, From(test.items).Height(), "Height(%v)", test.items)
	}
}

func TestIsBalanced(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		items    []int
		expected bool
	}{
		{nil, false},
		{[]int{1}, true},
		{[]int{1, 2}, true},
		{[]int{2, 1, 3}, true},
		{[]int{1, 2, 3}, true},
		{[]int{1, 2, 3, 4}, true},
		{[]int{1, 2, 3, 4, 5, 6}, false},
		{[]int{4, 2, 6, 1, 3, 5, 7}, true},
		{sample, false},
	}

	for _, test := range tests {
		assert.Equal(test.expected, From(test.items).IsBalanced(), "IsBalanced(%v)", test.items)
	}
}

func TestClear(t *testing.T) {
	assert := assert.New(t)
	tree := From(sample)

	tree.Clear()
	assert.Equal(-1, tree.Height())
	assert.Equal(uint64(0), tree.Size())
	assert.True(tree.IsEmpty())
	assert.Empty(slices.Collect(tree.All()))
	assert.Empty(slices.Collect(tree.Inorder()))
	checkTree(t, tree, true)

	// the tree is usable again afterwards
	tree.Add(1)
	assert.True(tree.Contains(1))
	assert.Equal(0, tree.Height())
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", New[int]().String())
	assert.Equal("| 3\n2\n| 1\n", From([]int{2, 1, 3}).String())
	assert.Equal("| | 3\n| 2\n1\n", From([]int{1, 2, 3}).String())
	assert.Equal(
		"| | | | | | 10\n"+
			"| | | | | 6\n"+
			"| | | | 6\n"+
			"| | | 4\n"+
			"| | 4\n"+
			"| 3\n"+
			"2\n"+
			"| -1\n"+
			"| | -2\n"+
			"| | | -32\n",
		From(sample).String())
}
