package bounded

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		offset int
		delta  int
		count  int
		want   move
	}{
		{"forward inside", 0, 1, 5, moveVerified},
		{"backward inside", 3, -2, 5, moveVerified},
		{"bulk to last", 0, 4, 5, moveVerified},
		{"bulk to first", 4, -4, 5, moveVerified},
		{"stay", 2, 0, 5, moveVerified},

		{"unit step past last", 4, 1, 5, moveBounce},
		{"unit step past first", 0, -1, 5, moveBounce},
		{"single element forward", 0, 1, 1, moveBounce},
		{"single element backward", 0, -1, 1, moveBounce},

		{"two past last", 4, 2, 5, moveOut},
		{"bulk past last", 0, 5, 5, moveOut},
		{"bulk far past last", 2, 100, 5, moveOut},
		{"two before first", 0, -2, 5, moveOut},
		{"bulk before first", 1, -10, 5, moveOut},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, classify(c.offset, c.delta, c.count))
		})
	}
}

func TestAdvance_Verified(t *testing.T) {
	p, err := New[int32](5)
	require.NoError(t, err)
	defer p.Release()

	base := p.Address()

	require.NoError(t, p.Advance(3))
	assert.Equal(t, 3, p.Offset())
	assert.Equal(t, base+12, p.Address())

	require.NoError(t, p.Retreat(2))
	assert.Equal(t, 1, p.Offset())
	assert.Equal(t, base+4, p.Address())

	require.NoError(t, p.Inc())
	require.NoError(t, p.Dec())
	assert.Equal(t, 1, p.Offset())
}

func TestAdvance_BounceBackAtLast(t *testing.T) {
	p, err := New[int32](5)
	require.NoError(t, err)
	defer p.Release()

	require.NoError(t, p.Advance(4))
	last := p.Address()

	// A unit step off the end clamps to the last element, and repeating it
	// clamps again: the bounce is idempotent.
	require.NoError(t, p.Inc())
	assert.Equal(t, 4, p.Offset())
	assert.Equal(t, last, p.Address())

	require.NoError(t, p.Inc())
	assert.Equal(t, 4, p.Offset())
	assert.Equal(t, last, p.Address())
}

func TestAdvance_BounceBackAtFirst(t *testing.T) {
	p, err := New[int64](3)
	require.NoError(t, err)
	defer p.Release()

	first := p.Address()

	require.NoError(t, p.Dec())
	assert.Zero(t, p.Offset())
	assert.Equal(t, first, p.Address())

	require.NoError(t, p.Retreat(1))
	assert.Zero(t, p.Offset())
	assert.Equal(t, first, p.Address())
}

func TestAdvance_OutOfRangeMutatesNothing(t *testing.T) {
	p, err := New[int32](5)
	require.NoError(t, err)
	defer p.Release()

	require.NoError(t, p.Advance(4))
	addr := p.Address()

	err = p.Advance(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	var ie IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 2, ie.Index)
	assert.Equal(t, -4, ie.Start)
	assert.Equal(t, 0, ie.End)

	assert.Equal(t, 4, p.Offset())
	assert.Equal(t, addr, p.Address())

	// Bulk deltas never bounce, even off by exactly one.
	require.NoError(t, p.Retreat(4))
	err = p.Advance(5)
	require.Error(t, err)
	assert.Zero(t, p.Offset())

	err = p.Retreat(2)
	require.Error(t, err)
	assert.Zero(t, p.Offset())
}

func TestAdvance_WalkToEnd(t *testing.T) {
	p, err := New[int16](5)
	require.NoError(t, err)
	defer p.Release()

	// Five unit steps from the first element: four verified moves, then a
	// bounce that holds the cursor on the last element.
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Inc())
	}
	assert.Equal(t, 4, p.Offset())
	assert.Equal(t, p.Last(), p.Address())
}
