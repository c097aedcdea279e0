package tree

// lookup descends from the root with the same comparison as Add and returns
// the first node holding an element equal to item, or nil.
func (t *OrderedTree[T]) lookup(item T) *node[T] {
	n := t.root
	for n != nil {
		if item == n.item {
			return n
		}
		if item < n.item {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Find returns the stored element equal to item. The boolean is false if
// there is none.
func (t *OrderedTree[T]) Find(item T) (T, bool) {
	n := t.lookup(item)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.item, true
}

func (t *OrderedTree[T]) Contains(item T) bool {
	return t.lookup(item) != nil
}

// Replace overwrites the stored element equal to item with newItem and
// returns the old element. The node is not moved, so newItem must sort into
// the same position as item. The boolean is false (and the tree unchanged)
// if item is not present.
func (t *OrderedTree[T]) Replace(item T, newItem T) (T, bool) {
	n := t.lookup(item)
	if n == nil {
		var zero T
		return zero, false
	}
	old := n.item
	n.item = newItem
	return old, true
}
