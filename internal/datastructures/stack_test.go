package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack[int]()
	_, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	s.Push(1)
	assert.Equal(t, 1, s.Len())

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, s.Len())

	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestStackOrdering(t *testing.T) {
	s := NewStack[string]()
	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "c", top)
	assert.Equal(t, 3, s.Len())

	for _, want := range []string{"c", "b", "a"} {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestStackDrain(t *testing.T) {
	s := NewStack[int]()
	for i := 0; i < 10; i++ {
		s.Push(i)
	}

	it := s.Drain()
	for want := 9; want >= 0; want-- {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestStackLargeClear(t *testing.T) {
	const n = 100000
	s := NewStack[int]()
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Pop()
	assert.False(t, ok)
}
