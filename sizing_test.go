package fusedlru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	cases := []struct {
		cacheSize  int32
		loadFactor float32
		want       int32
	}{
		{2, 0.66, 4},
		{3, 0.66, 8},
		{10, 0.66, 16},
		{100, 0.5, 256},
	}
	for _, tc := range cases {
		got, err := computeCapacity(tc.cacheSize, tc.loadFactor)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "cacheSize=%d loadFactor=%v", tc.cacheSize, tc.loadFactor)
	}
}

func TestComputeCapacityRejectsTinyCacheSize(t *testing.T) {
	_, err := computeCapacity(1, 0.66)
	require.Error(t, err)
	_, err = computeCapacity(0, 0.66)
	require.Error(t, err)
	_, err = computeCapacity(-5, 0.66)
	require.Error(t, err)
}

func TestComputeCapacityRejectsOutOfRangeLoadFactor(t *testing.T) {
	_, err := computeCapacity(10, 0)
	require.Error(t, err)
	_, err = computeCapacity(10, 1)
	require.Error(t, err)
	_, err = computeCapacity(10, -0.1)
	require.Error(t, err)
}

func TestComputeCapacityRejectsOverflowingRequest(t *testing.T) {
	_, err := computeCapacity(maxCapacity, 0.99)
	require.Error(t, err)
}

func TestNextPowerOfTwoTable(t *testing.T) {
	cases := map[int64]int64{
		0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024, 1025: 2048,
	}
	for in, want := range cases {
		require.Equal(t, want, nextPowerOfTwo(in), "n=%d", in)
	}
}
