package datastructures

type (
	// Stack is a singly linked LIFO stack. Unlike the deque, every node has
	// exactly one owner (its predecessor, or the stack's head handle), so no
	// reference counting is involved.
	Stack[E any] struct {
		head *stackNode[E]
		size int
	}

	stackNode[E any] struct {
		elem E
		next *stackNode[E]
	}
)

// NewStack creates an empty stack.
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{}
}

// Push places a value on top of the stack.
func (s *Stack[E]) Push(elem E) {
	s.head = &stackNode[E]{elem: elem, next: s.head}
	s.size++
}

// Pop removes and returns the top value; false when the stack is empty.
func (s *Stack[E]) Pop() (E, bool) {
	var zero E
	if s.head == nil {
		return zero, false
	}
	head := s.head
	s.head = head.next
	head.next = nil
	s.size--
	return head.elem, true
}

// Peek returns the top value without removing it.
func (s *Stack[E]) Peek() (E, bool) {
	var zero E
	if s.head == nil {
		return zero, false
	}
	return s.head.elem, true
}

// Len returns the number of elements on the stack.
func (s *Stack[E]) Len() int {
	return s.size
}

// Clear unlinks every node one step at a time, the same constant-depth
// teardown the deque uses, without going through Pop per element.
func (s *Stack[E]) Clear() {
	curr := s.head
	s.head = nil
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
	}
	s.size = 0
}
