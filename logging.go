package fusedlru

// logging.go plugs an optional zap.Logger into fusedlru. The cache never
// logs on the hot path (Put/Get/Remove/Clear are silent) and New logs
// nothing either; only the defensive internal-invariant panic emits anything.

import "go.uber.org/zap"

// invariantViolation logs the detail (if a logger was configured) and
// panics with a structured error. Reaching this path means size > cacheSize
// became observable or an empty slot was unreachable after eviction +
// backshift — both are unreachable-by-construction bugs, not recoverable
// conditions.
func (c *Cache) invariantViolation(detail string) {
	if c.logger != nil {
		c.logger.Error("fusedlru: internal invariant violated",
			zap.String("detail", detail),
			zap.Int32("size", c.size),
			zap.Int32("cacheSize", c.cacheSize),
		)
	}
	panic(newInternalInvariantError(detail))
}
