package fusedlru

// index.go implements the open-addressed hash index: probing from a key's
// home slot, and tombstone-free backshift deletion. There is no separate
// index structure at all — the probe sequence over the buffer itself *is*
// the index, so deleting a slot means sliding later occupants backward
// along their own probe chains instead of leaving a tombstone.

// lookup walks the probe sequence for k starting at its home slot. It
// returns the slot offset and true if k is present, or false if an empty
// slot or a full wrap-around is reached first.
func (c *Cache) lookup(k int32) (int32, bool) {
	off := c.home(k)
	for i := int32(0); i < c.capacity; i++ {
		switch c.key(off) {
		case Sentinel:
			return 0, false
		case k:
			return off, true
		}
		off = c.next(off)
	}
	return 0, false
}

// backshift fills the slot vacated at offset free by sliding later entries
// along their probe chains backward whenever doing so preserves probe
// reachability (invariant 7). The caller must have already unlinked the
// entry previously at free from the recency list; the walk starts at
// next(free) regardless of what free currently holds, and the slot left
// vacant at the end of the walk has its key set to Sentinel.
func (c *Cache) backshift(free int32) {
	f := free
	p := c.next(f)
	for c.key(p) != Sentinel {
		h := c.home(c.key(p))

		var legal bool
		if f <= p {
			legal = h <= f || h > p
		} else {
			legal = p < h && h <= f
		}

		if legal {
			c.relocate(p, f)
			f = p
		}
		p = c.next(p)
	}
	c.setKey(f, Sentinel)
}

// relocate copies all four fields of slot src into slot dst and repoints any
// recency-list neighbor that referenced src so that it references dst
// instead. It does not touch the hash index (there isn't one to touch) —
// the entry becomes reachable at dst purely because callers now probe dst's
// predecessor chain instead of src's.
func (c *Cache) relocate(src, dst int32) {
	c.setKey(dst, c.key(src))
	c.setValue(dst, c.value(src))
	c.setLeft(dst, c.left(src))
	c.setRight(dst, c.right(src))

	if l := c.left(dst); l != Sentinel {
		c.setRight(l, dst)
	}
	if r := c.right(dst); r != Sentinel {
		c.setLeft(r, dst)
	}
	if c.head == src {
		c.head = dst
	}
	if c.tail == src {
		c.tail = dst
	}
}
