package tree

import "linkedbst/container"

// RangeFind returns the distinct elements e with low <= e <= high, in
// ascending order. The result is empty (not nil) if nothing matches.
//
// The walk is an in-order traversal that skips left subtrees lying wholly
// below low and stops at the first element above high.
func (t *OrderedTree[T]) RangeFind(low T, high T) []T {
	found := []T{}
	if high < low {
		return found
	}
	stack := container.NewStack[*node[T]]()
	n := t.root
	for n != nil || !stack.IsEmpty() {
		for n != nil {
			stack.Push(n)
			// the left subtree holds elements <= n.item
			if n.item < low {
				n = nil
			} else {
				n = n.left
			}
		}
		top, _ := stack.Pop()
		if high < top.item {
			break
		}
		if low <= top.item && (len(found) == 0 || found[len(found)-1] != top.item) {
			found = append(found, top.item)
		}
		n = top.right
	}
	return found
}

// Successor returns the smallest element strictly greater than item. The
// boolean is false if there is none.
//
// This deliberately scans every element: O(n), not O(height).
func (t *OrderedTree[T]) Successor(item T) (T, bool) {
	var result T
	found := false
	for x := range t.All() {
		if item < x && (!found || x < result) {
			result = x
			found = true
		}
	}
	return result, found
}

// Predecessor returns the largest element strictly less than item. The
// boolean is false if there is none. Like Successor, it scans every element.
func (t *OrderedTree[T]) Predecessor(item T) (T, bool) {
	var result T
	found := false
	for x := range t.All() {
		if x < item && (!found || result < x) {
			result = x
			found = true
		}
	}
	return result, found
}
