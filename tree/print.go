package tree

import (
	"fmt"
	"strings"

	"linkedbst/container"
)

type leveledNode[T any] struct {
	n     *node[T]
	level int
}

// String draws the tree rotated 90 degrees counterclockwise: one element per
// line, right subtree above its parent and left subtree below, each line
// indented by "| " per level of depth. An empty tree is the empty string.
func (t *OrderedTree[T]) String() string {
	var b strings.Builder
	stack := container.NewStack[leveledNode[T]]()
	cur := leveledNode[T]{n: t.root}
	for cur.n != nil || !stack.IsEmpty() {
		for cur.n != nil {
			stack.Push(cur)
			cur = leveledNode[T]{n: cur.n.right, level: cur.level + 1}
		}
		top, _ := stack.Pop()
		b.WriteString(strings.Repeat("| ", top.level))
		fmt.Fprintf(&b, "%v\n", top.n.item)
		cur = leveledNode[T]{n: top.n.left, level: top.level + 1}
	}
	return b.String()
}
