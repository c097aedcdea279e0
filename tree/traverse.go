package tree

import (
	"iter"

	"linkedbst/container"
)

// All returns the elements in pre-order; it is the same as Preorder.
func (t *OrderedTree[T]) All() iter.Seq[T] {
	return t.Preorder()
}

// Preorder returns a sequence that visits each node before its subtrees, left
// subtree first. Each call to the sequence starts a fresh traversal. The tree
// must not be modified while a traversal is in progress.
func (t *OrderedTree[T]) Preorder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		stack := container.NewStack[*node[T]]()
		stack.Push(t.root)
		for {
			n, ok := stack.Pop()
			if !ok {
				return
			}
			if !yield(n.item) {
				return
			}
			// pushed right first so the left subtree pops first
			if n.right != nil {
				stack.Push(n.right)
			}
			if n.left != nil {
				stack.Push(n.left)
			}
		}
	}
}

// Inorder returns a sequence of the elements in ascending order.
func (t *OrderedTree[T]) Inorder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := container.NewStack[*node[T]]()
		n := t.root
		for n != nil || !stack.IsEmpty() {
			for n != nil {
				stack.Push(n)
				n = n.left
			}
			top, _ := stack.Pop()
			if !yield(top.item) {
				return
			}
			n = top.right
		}
	}
}

// Postorder returns a sequence that visits both subtrees of a node, left
// first, before the node itself.
func (t *OrderedTree[T]) Postorder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := container.NewStack[*node[T]]()
		var last *node[T]
		n := t.root
		for n != nil || !stack.IsEmpty() {
			if n != nil {
				stack.Push(n)
				n = n.left
				continue
			}
			top, _ := stack.Peek()
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			stack.Pop()
			if !yield(top.item) {
				return
			}
			last = top
		}
	}
}

// Levelorder returns a sequence of the elements level by level from the root,
// left to right within a level.
func (t *OrderedTree[T]) Levelorder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		q := container.NewQueue[*node[T]]()
		q.Push(t.root)
		for {
			n, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(n.item) {
				return
			}
			if n.left != nil {
				q.Push(n.left)
			}
			if n.right != nil {
				q.Push(n.right)
			}
		}
	}
}
