package datastructures

type (
	// Iterator yields elements front to back until the source is exhausted.
	Iterator[E any] interface {
		// Next returns the next element, or false once nothing remains.
		Next() (E, bool)
	}

	// ReverseIterator adds back-to-front consumption on top of Iterator.
	// Both directions run against the same underlying structure, so a mixed
	// traversal meets in the middle rather than seeing elements twice.
	ReverseIterator[E any] interface {
		Iterator[E]
		NextBack() (E, bool)
	}

	dequeDrain[E any] struct {
		d *Deque[E]
	}

	stackDrain[E any] struct {
		s *Stack[E]
	}
)

// Drain returns a draining iterator over the deque: every step removes the
// element it yields, from whichever end is asked. The iterator is finite and
// cannot be restarted; once it reports false the deque is empty.
func (d *Deque[E]) Drain() ReverseIterator[E] {
	return &dequeDrain[E]{d: d}
}

func (it *dequeDrain[E]) Next() (E, bool) {
	return it.d.PopFront()
}

func (it *dequeDrain[E]) NextBack() (E, bool) {
	return it.d.PopBack()
}

// Drain returns a draining iterator over the stack, popping top-down.
func (s *Stack[E]) Drain() Iterator[E] {
	return &stackDrain[E]{s: s}
}

func (it *stackDrain[E]) Next() (E, bool) {
	return it.s.Pop()
}
