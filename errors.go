package fusedlru

// errors.go provides structured construction errors using the go-errors
// library's ErrorCode + context-map shape. fusedlru surfaces only
// construction-time failures and the defensive internal-invariant panic —
// hot-path operations (Put/Get/Remove) never fail; absence and overwrite are
// signaled in-band via Sentinel and the previous value.

import (
	"github.com/agilira/go-errors"
)

// Error codes for fusedlru construction and invariant failures.
const (
	ErrCodeInvalidSize       errors.ErrorCode = "FUSEDLRU_INVALID_SIZE"
	ErrCodeInvalidLoad       errors.ErrorCode = "FUSEDLRU_INVALID_LOAD_FACTOR"
	ErrCodeCapacityOverflow  errors.ErrorCode = "FUSEDLRU_CAPACITY_OVERFLOW"
	ErrCodeInternalInvariant errors.ErrorCode = "FUSEDLRU_INTERNAL_INVARIANT"
)

const (
	msgInvalidSize       = "invalid cache size: must be >= 2"
	msgInvalidLoad       = "invalid load factor: must be in (0, 1)"
	msgCapacityOverflow  = "requested capacity exceeds 2^28 slots"
	msgInternalInvariant = "internal invariant violated"
)

func newInvalidSizeError(size int32) error {
	return errors.NewWithContext(ErrCodeInvalidSize, msgInvalidSize, map[string]interface{}{
		"provided_size":    size,
		"minimum_required": 2,
	})
}

func newInvalidLoadFactorError(loadFactor float32) error {
	return errors.NewWithContext(ErrCodeInvalidLoad, msgInvalidLoad, map[string]interface{}{
		"provided_load_factor": loadFactor,
	})
}

func newCapacityOverflowError(capacity int64) error {
	return errors.NewWithContext(ErrCodeCapacityOverflow, msgCapacityOverflow, map[string]interface{}{
		"computed_capacity": capacity,
		"maximum_allowed":   int64(maxCapacity),
	})
}

func newInternalInvariantError(detail string) error {
	return errors.NewWithContext(ErrCodeInternalInvariant, msgInternalInvariant, map[string]interface{}{
		"detail": detail,
	})
}
