package fusedlru

// cache.go orchestrates Put/Get/Remove/Clear by interleaving index.go's
// probing/backshift with recency.go's unlink/pushTail. Eviction restarts the
// probe for the incoming key after freeing and backshifting the old LRU
// slot, since backshift may move entries into what was the free slot along
// the new key's path.

import "go.uber.org/zap"

// Cache is an integer-keyed, fixed-capacity LRU cache backed by a single
// []int32 buffer. It is not safe for concurrent use; callers must
// serialize access externally.
type Cache struct {
	buf []int32

	capacity   int32 // table capacity in slots (power of two)
	cacheSize  int32 // logical capacity; eviction fires at this boundary
	slotMask   int32 // capacity - 1
	offsetMask int32 // capacity*fieldsPerSlot - 1

	size int32
	head int32
	tail int32

	logger *zap.Logger
}

// New constructs a Cache able to hold up to cacheSize entries. cacheSize
// must be >= 2. The underlying table is sized to
// ceil(cacheSize/loadFactor) slots, rounded up to a power of two;
// construction fails if that would require more slots than maxCapacity
// allows.
func New(cacheSize int32, opts ...Option) (*Cache, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	capacity, err := computeCapacity(cacheSize, cfg.loadFactor)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		buf:        make([]int32, int64(capacity)*fieldsPerSlot),
		capacity:   capacity,
		cacheSize:  cacheSize,
		slotMask:   capacity - 1,
		offsetMask: capacity*fieldsPerSlot - 1,
		head:       Sentinel,
		tail:       Sentinel,
		logger:     cfg.logger,
	}
	c.resetBuffer()
	return c, nil
}

// resetBuffer overwrites every slot's key field with Sentinel, leaving
// value/left/right untouched (they are never read for an empty slot).
func (c *Cache) resetBuffer() {
	for off := int32(0); off < c.capacity*fieldsPerSlot; off += fieldsPerSlot {
		c.buf[off+fieldKey] = Sentinel
	}
}

// Put inserts or updates key with value. It returns the previous value, or
// Sentinel if the key was not already present. Passing Sentinel as key is
// a precondition violation; Put rejects it explicitly by returning Sentinel
// without modifying the cache, rather than leaving the behavior undefined.
//
// When the cache is full and key is new, Put evicts the least-recently-used
// entry (unlink + backshift its slot), then restarts the probe for key from
// its home slot — backshift may have changed which slot along key's probe
// path is empty, so the pre-eviction probe position is stale.
func (c *Cache) Put(key, value int32) int32 {
	if key == Sentinel {
		return Sentinel
	}
	if c.size > c.cacheSize {
		c.invariantViolation("put: size exceeds cacheSize")
	}

	off := c.home(key)
	for i := int32(0); i < c.capacity; i++ {
		switch c.key(off) {
		case key:
			prev := c.value(off)
			c.setValue(off, value)
			c.unlink(off)
			c.pushTail(off)
			return prev
		case Sentinel:
			if c.size < c.cacheSize {
				c.insertFresh(off, key, value)
				return Sentinel
			}
			c.evictOne()
			return c.insertAfterEviction(key, value)
		}
		off = c.next(off)
	}

	c.invariantViolation("put: probe sequence exhausted without finding key or an empty slot")
	return Sentinel
}

func (c *Cache) insertFresh(off, key, value int32) {
	c.setKey(off, key)
	c.setValue(off, value)
	c.pushTail(off)
	c.size++
}

// evictOne unlinks the current LRU slot (head) and backshifts it.
func (c *Cache) evictOne() {
	victim := c.head
	c.unlink(victim)
	c.backshift(victim)
	c.size--
}

// insertAfterEviction restarts the probe for key from its home slot,
// because evictOne's backshift may have moved entries into what was
// previously the free slot along key's path.
func (c *Cache) insertAfterEviction(key, value int32) int32 {
	off := c.home(key)
	for i := int32(0); i < c.capacity; i++ {
		if c.key(off) == Sentinel {
			c.insertFresh(off, key, value)
			return Sentinel
		}
		off = c.next(off)
	}
	c.invariantViolation("put: no empty slot reachable after eviction and backshift")
	return Sentinel
}

// Get returns the value for key and updates its recency, or Sentinel if
// key is absent. Passing Sentinel as key always returns Sentinel.
func (c *Cache) Get(key int32) int32 {
	if key == Sentinel {
		return Sentinel
	}
	off, ok := c.lookup(key)
	if !ok {
		return Sentinel
	}
	val := c.value(off)
	c.unlink(off)
	c.pushTail(off)
	return val
}

// Remove deletes key and returns its value, or Sentinel if key was absent.
func (c *Cache) Remove(key int32) int32 {
	if key == Sentinel {
		return Sentinel
	}
	off, ok := c.lookup(key)
	if !ok {
		return Sentinel
	}
	val := c.value(off)
	c.unlink(off)
	c.backshift(off)
	c.size--
	return val
}

// Clear resets the cache to empty without releasing the underlying buffer.
func (c *Cache) Clear() {
	c.resetBuffer()
	c.size = 0
	c.head = Sentinel
	c.tail = Sentinel
}

// Len returns the current number of entries.
func (c *Cache) Len() int32 { return c.size }

// Cap returns the fixed logical capacity (cacheSize) the Cache was
// constructed with — distinct from the larger hash-table capacity used
// internally to keep probe lengths short.
func (c *Cache) Cap() int32 { return c.cacheSize }
