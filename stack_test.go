package esolang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack(1, 2, 3)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 3}, s.Values())
	require.Equal(t, "3,2,1", s.String())

	v, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 3, v)

	a, b, ok := s.Pop2()
	require.True(t, ok)
	require.Equal(t, 2, a)
	require.Equal(t, 3, b)
	require.Equal(t, []int{1}, s.Values())

	_, _, ok = s.Pop2()
	require.False(t, ok)
	require.Equal(t, []int{1}, s.Values())

	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = s.Pop()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)
}

func TestStack_Roll(t *testing.T) {
	tests := []struct {
		values      []int
		depth, roll int
		want        []int
		ok          bool
	}{
		{[]int{1, 2, 3}, 3, 1, []int{3, 1, 2}, true},
		{[]int{1, 2, 3}, 3, 2, []int{2, 3, 1}, true},
		{[]int{1, 2, 3}, 3, 0, []int{1, 2, 3}, true},
		{[]int{1, 2, 3}, 3, -1, []int{2, 3, 1}, true},
		{[]int{1, 2, 3}, 3, 4, []int{3, 1, 2}, true},
		{[]int{9, 1, 2, 3}, 2, 1, []int{9, 1, 3, 2}, true},
		{[]int{1, 2, 3}, 0, 1, []int{1, 2, 3}, false},
		{[]int{1, 2, 3}, 4, 1, []int{1, 2, 3}, false},
		{[]int{1, 2, 3}, -2, 1, []int{1, 2, 3}, false},
	}
	for _, tt := range tests {
		s := NewStack(tt.values...)
		require.Equal(t, tt.ok, s.Roll(tt.depth, tt.roll))
		require.Equal(t, tt.want, s.Values(), "roll(%d, %d)", tt.depth, tt.roll)
	}
}
