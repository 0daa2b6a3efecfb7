package fusedlru

// recency.go threads the doubly-linked recency list through the same
// buffer slot.go indexes into. head is the least-recently-used end, tail is
// the most-recently-used end; both operations are O(1), touching only s and
// its immediate neighbors.

// unlink splices slot s out of the recency list. It leaves s's own left and
// right fields in a don't-care state; callers must overwrite or discard them
// before s is read again as a list member.
func (c *Cache) unlink(s int32) {
	l := c.left(s)
	r := c.right(s)
	if l != Sentinel {
		c.setRight(l, r)
	} else {
		c.head = r
	}
	if r != Sentinel {
		c.setLeft(r, l)
	} else {
		c.tail = l
	}
}

// pushTail appends s after the current tail, making it the most recently
// used slot. If the list was empty, s also becomes head.
func (c *Cache) pushTail(s int32) {
	old := c.tail
	c.setLeft(s, old)
	c.setRight(s, Sentinel)
	if old == Sentinel {
		c.head = s
	} else {
		c.setRight(old, s)
	}
	c.tail = s
}
