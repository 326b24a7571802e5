package datastructures

type (
	// cell is the unit of heap allocation for the deque. A cell is jointly
	// owned: an interior node is held by its predecessor's next link and its
	// successor's prev link, a boundary node by one neighbor plus the deque's
	// own head or tail handle. refs counts those owners; a cell is dead only
	// when the count reaches zero.
	//
	// borrow guards the link fields at runtime: 0 means free, n > 0 means n
	// outstanding readable views, -1 means one writable view. The usual
	// compile-time exclusivity cannot express two-owners-per-node, so the
	// discipline is checked on every access instead.
	cell[E any] struct {
		refs   int
		borrow int
		elem   E
		next   *cell[E]
		prev   *cell[E]
	}
)

// newCell allocates a cell with a single owner (the caller's handle).
func newCell[E any](elem E) *cell[E] {
	return &cell[E]{refs: 1, elem: elem}
}

// retain registers one more owner and returns the cell for link assignment.
func (c *cell[E]) retain() *cell[E] {
	c.refs++
	return c
}

// release drops one owner. Releasing a cell nobody owns is a defect in the
// relinking logic, not a recoverable condition.
func (c *cell[E]) release() {
	if c.refs <= 0 {
		panic("datastructures: release of unowned node")
	}
	c.refs--
}

// borrowLinks takes a readable view of the link fields. Any number of
// readable views may coexist, but never alongside a writable one. The
// returned func gives the view back.
func (c *cell[E]) borrowLinks() func() {
	if c.borrow < 0 {
		panic("datastructures: node links are mutably borrowed")
	}
	c.borrow++
	return func() { c.borrow-- }
}

// borrowLinksMut takes the single writable view of the link fields. It
// panics if any view, readable or writable, is outstanding.
func (c *cell[E]) borrowLinksMut() func() {
	if c.borrow != 0 {
		panic("datastructures: node links are already borrowed")
	}
	c.borrow = -1
	return func() { c.borrow = 0 }
}

// take extracts the element. The caller must hold the only remaining
// ownership of the cell; a detached node still co-owned by a neighbor (or by
// an external handle) cannot give its element up.
func (c *cell[E]) take() E {
	if c.refs != 1 {
		panic("datastructures: node is still shared at extraction")
	}
	c.refs = 0
	return c.elem
}
