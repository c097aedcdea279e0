package container

// Stack is a LIFO stack backed by a slice.
type Stack[T any] struct {
	elements []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		elements: []T{},
	}
}

func (s *Stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.elements) == 0 {
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	// drop the popped slot's reference
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

// Peek returns the most recently pushed element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.elements)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Queue is a FIFO queue built from two stacks: pushes go to back, pops come
// from front, and back is drained into front only when front runs dry.
type Queue[T any] struct {
	back  *Stack[T]
	front *Stack[T]
}

func NewQueue[T any]() Queue[T] {
	return Queue[T]{
		back:  NewStack[T](),
		front: NewStack[T](),
	}
}

func (q Queue[T]) Push(x T) {
	q.back.Push(x)
}

func (q Queue[T]) emptyBack() {
	for {
		x, ok := q.back.Pop()
		if ok {
			q.front.Push(x)
		} else {
			break
		}
	}
}

func (q Queue[T]) Pop() (T, bool) {
	x, ok := q.front.Pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	x, ok2 := q.front.Pop()
	return x, ok2
}

func (q Queue[T]) Len() int {
	return q.back.Len() + q.front.Len()
}

func (q Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}
