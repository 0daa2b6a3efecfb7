package fusedlru

// slot.go owns index arithmetic into the flat []int32 buffer. A slot index
// is always an absolute offset into the buffer (a multiple of fieldsPerSlot),
// never a logical slot number — pointer arithmetic and masking below operate
// directly on that offset rather than through a second layer of translation.

// key returns the key stored at absolute offset off.
func (c *Cache) key(off int32) int32 { return c.buf[off+fieldKey] }

func (c *Cache) setKey(off, v int32) { c.buf[off+fieldKey] = v }

func (c *Cache) value(off int32) int32 { return c.buf[off+fieldValue] }

func (c *Cache) setValue(off, v int32) { c.buf[off+fieldValue] = v }

func (c *Cache) left(off int32) int32 { return c.buf[off+fieldLeft] }

func (c *Cache) setLeft(off, v int32) { c.buf[off+fieldLeft] = v }

func (c *Cache) right(off int32) int32 { return c.buf[off+fieldRight] }

func (c *Cache) setRight(off, v int32) { c.buf[off+fieldRight] = v }

// next advances a slot offset by one slot, wrapping modulo the buffer
// length. Valid because the buffer length is a power of two and
// fieldsPerSlot divides it.
func (c *Cache) next(off int32) int32 {
	return int32((uint32(off) + fieldsPerSlot) & uint32(c.offsetMask))
}

// home returns the home slot (first probe position) for key k: the
// Fibonacci-multiplicative hash mix folded to a slot number, expressed as an
// absolute offset.
func (c *Cache) home(k int32) int32 {
	h := uint32(k) * goldenRatio32
	h ^= h >> 16
	slotNum := h & uint32(c.slotMask)
	return int32(slotNum) * fieldsPerSlot
}
