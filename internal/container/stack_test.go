package container

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_LIFOOrder(t *testing.T) {
	s := NewStack[int](3)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	assert.True(t, s.IsFull())
	assert.Equal(t, []int{3, 2, 1}, s.Items())

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_PushFullIsNoop(t *testing.T) {
	s := NewStack[int](2)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	err := s.Push(3)
	assert.True(t, errors.Is(err, ErrContainerFull))
	assert.Equal(t, []int{2, 1}, s.Items())
}

func TestStack_PopEmpty(t *testing.T) {
	s := NewStack[string](3)
	v, err := s.Pop()
	assert.True(t, errors.Is(err, ErrEmptyContainer))
	assert.Empty(t, v)
}

func TestStack_AtSet(t *testing.T) {
	s := NewStack[int](3)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}

	top, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, 3, top)

	bottom, ok := s.At(2)
	require.True(t, ok)
	assert.Equal(t, 1, bottom)

	assert.True(t, s.Set(1, 20))
	assert.Equal(t, []int{3, 20, 1}, s.Items())

	assert.False(t, s.Set(3, 0))
	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestStack_ShrinkAndRegrow(t *testing.T) {
	s := NewStack[int](2)
	require.NoError(t, s.Push(1))
	_, err := s.Pop()
	require.NoError(t, err)
	_, ok := s.At(0)
	assert.False(t, ok)

	require.NoError(t, s.Push(5))
	require.NoError(t, s.Push(6))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Cap())
	assert.Equal(t, []int{6, 5}, s.Items())
}
