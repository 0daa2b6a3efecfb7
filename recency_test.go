package fusedlru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushTailOnEmptyListBecomesHeadAndTail(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	off := c.home(1)
	c.setKey(off, 1)
	c.pushTail(off)

	require.Equal(t, off, c.head)
	require.Equal(t, off, c.tail)
	require.Equal(t, Sentinel, c.left(off))
	require.Equal(t, Sentinel, c.right(off))
}

func TestUnlinkMiddleSlotRelinksNeighbors(t *testing.T) {
	c, err := New(16)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)

	mid, ok := c.lookup(2)
	require.True(t, ok)
	c.unlink(mid)

	first, _ := c.lookup(1)
	third, _ := c.lookup(3)
	require.Equal(t, third, c.right(first))
	require.Equal(t, first, c.left(third))
}

func TestUnlinkHeadUpdatesHead(t *testing.T) {
	c, err := New(16)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)

	head := c.head
	c.unlink(head)
	second, _ := c.lookup(2)
	require.Equal(t, second, c.head)
}

func TestUnlinkTailUpdatesTail(t *testing.T) {
	c, err := New(16)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)

	tail := c.tail
	c.unlink(tail)
	first, _ := c.lookup(1)
	require.Equal(t, first, c.tail)
}

func TestUnlinkOnlyElementEmptiesList(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	c.Put(1, 10)
	only := c.head
	c.unlink(only)

	require.Equal(t, Sentinel, c.head)
	require.Equal(t, Sentinel, c.tail)
}
