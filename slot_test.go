package fusedlru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotAccessorsRoundTrip(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	off := int32(0)
	c.setKey(off, 5)
	c.setValue(off, 50)
	c.setLeft(off, Sentinel)
	c.setRight(off, Sentinel)

	require.Equal(t, int32(5), c.key(off))
	require.Equal(t, int32(50), c.value(off))
	require.Equal(t, Sentinel, c.left(off))
	require.Equal(t, Sentinel, c.right(off))
}

func TestHomeIsStableForSameKey(t *testing.T) {
	c, err := New(64)
	require.NoError(t, err)

	for k := int32(0); k < 1000; k++ {
		require.Equal(t, c.home(k), c.home(k))
	}
}

func TestHomeStaysWithinBufferBounds(t *testing.T) {
	c, err := New(64)
	require.NoError(t, err)

	for k := int32(-500); k < 500; k++ {
		off := c.home(k)
		require.GreaterOrEqual(t, off, int32(0))
		require.Less(t, off, c.capacity*fieldsPerSlot)
		require.Zero(t, off%fieldsPerSlot)
	}
}

func TestHomeDistributesAcrossSlots(t *testing.T) {
	c, err := New(64)
	require.NoError(t, err)

	seen := make(map[int32]bool)
	for k := int32(0); k < 64; k++ {
		seen[c.home(k)] = true
	}
	// Not a strict uniformity requirement, just a sanity check that the hash
	// mix doesn't collapse every key onto one slot.
	require.Greater(t, len(seen), 1)
}
