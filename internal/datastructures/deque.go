package datastructures

type (
	// Deque is a double-ended queue of individually allocated, doubly linked
	// nodes. Every interior node is owned from two directions at once, so the
	// links carry an explicit reference count (see cell) instead of relying
	// on a single owning pointer.
	//
	// A Deque is not safe for concurrent use; callers that share one across
	// goroutines must serialize access themselves.
	Deque[E any] struct {
		head *cell[E]
		tail *cell[E]
		size int
	}
)

// NewDeque creates an empty deque.
func NewDeque[E any]() *Deque[E] {
	return &Deque[E]{}
}

// PushFront inserts a value at the head of the deque.
func (d *Deque[E]) PushFront(elem E) {
	n := newCell(elem)
	if d.head == nil {
		// First node: the head and tail handles are its two owners.
		d.head = n
		d.tail = n.retain()
	} else {
		old := d.head
		done := n.borrowLinksMut()
		// The head handle's ownership of the old head moves into the new
		// node's next link; the owner count of old is unchanged.
		n.next = old
		done()
		done = old.borrowLinksMut()
		old.prev = n.retain()
		done()
		d.head = n
	}
	d.size++
}

// PushBack inserts a value at the tail of the deque.
func (d *Deque[E]) PushBack(elem E) {
	n := newCell(elem)
	if d.tail == nil {
		d.tail = n
		d.head = n.retain()
	} else {
		old := d.tail
		done := n.borrowLinksMut()
		n.prev = old
		done()
		done = old.borrowLinksMut()
		old.next = n.retain()
		done()
		d.tail = n
	}
	d.size++
}

// PopFront detaches the head node and returns its value. The second return
// is false when the deque is empty; that is the normal exhausted outcome,
// not an error.
func (d *Deque[E]) PopFront() (E, bool) {
	var zero E
	if d.head == nil {
		return zero, false
	}

	// The head handle's ownership moves to this local handle.
	old := d.head
	done := old.borrowLinksMut()
	next := old.next
	old.next = nil
	done()

	if next != nil {
		// The successor gives up its prev ownership of the old head,
		// leaving this handle as the sole owner.
		done = next.borrowLinksMut()
		next.prev.release()
		next.prev = nil
		done()
		d.head = next
	} else {
		d.tail.release()
		d.tail = nil
		d.head = nil
	}
	d.size--
	return old.take(), true
}

// PopBack detaches the tail node and returns its value.
func (d *Deque[E]) PopBack() (E, bool) {
	var zero E
	if d.tail == nil {
		return zero, false
	}

	old := d.tail
	done := old.borrowLinksMut()
	prev := old.prev
	old.prev = nil
	done()

	if prev != nil {
		done = prev.borrowLinksMut()
		prev.next.release()
		prev.next = nil
		done()
		d.tail = prev
	} else {
		d.head.release()
		d.head = nil
		d.tail = nil
	}
	d.size--
	return old.take(), true
}

// Len returns the number of elements in the deque.
func (d *Deque[E]) Len() int {
	return d.size
}

// Clear releases every remaining node. The chain is unlinked one node per
// loop step from the head, so teardown runs in constant stack depth no
// matter how long the deque is; a cascading release through the next links
// would instead recurse to the full list length.
func (d *Deque[E]) Clear() {
	for d.head != nil {
		old := d.head
		done := old.borrowLinksMut()
		next := old.next
		old.next = nil
		done()

		if next != nil {
			done = next.borrowLinksMut()
			next.prev.release()
			next.prev = nil
			done()
			d.head = next
		} else {
			d.tail.release()
			d.tail = nil
			d.head = nil
		}
		// Discard the detached node without extracting its element.
		old.release()
	}
	d.size = 0
}
