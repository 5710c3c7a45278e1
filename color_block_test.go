package esolang

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func sortedCodels(b ColorBlock) []Position {
	ps := append([]Position{}, b.Codels...)
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
	return ps
}

func TestFindBlock(t *testing.T) {
	p := getTestProgram(t,
		[]Color{Red, Red, Blue},
		[]Color{Blue, Red, Blue},
		[]Color{Red, Blue, Red},
	)

	b := FindBlock(p, Position{0, 0})
	require.Equal(t, Red, b.Color)
	require.Equal(t, 3, b.Size())
	require.Equal(t, []Position{{0, 0}, {1, 0}, {1, 1}}, sortedCodels(b))

	// Diagonal neighbours of the same color are separate blocks.
	b = FindBlock(p, Position{0, 2})
	require.Equal(t, []Position{{0, 2}}, sortedCodels(b))
	b = FindBlock(p, Position{2, 2})
	require.Equal(t, []Position{{2, 2}}, sortedCodels(b))

	b = FindBlock(p, Position{2, 1})
	require.Equal(t, Blue, b.Color)
	require.Equal(t, []Position{{2, 0}, {2, 1}}, sortedCodels(b))
}

func TestFindBlock_ContainsStartAndOnlyConnectedCodels(t *testing.T) {
	p := getTestProgram(t,
		[]Color{Green, Green, K, Green},
		[]Color{K, Green, K, Green},
		[]Color{Green, Green, Green, Green},
		[]Color{Green, K, K, K},
	)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			start := Position{x, y}
			b := FindBlock(p, start)
			require.True(t, b.Contains(start))
			for _, c := range b.Codels {
				require.Equal(t, p.At(start), p.At(c))
			}
		}
	}

	require.Equal(t, 10, FindBlock(p, Position{0, 0}).Size())
	require.Equal(t, 2, FindBlock(p, Position{2, 0}).Size())
	require.Equal(t, 3, FindBlock(p, Position{1, 3}).Size())
}

func TestBlockCache(t *testing.T) {
	p := getTestProgram(t,
		[]Color{Red, Red, Blue},
		[]Color{Yellow, Red, Blue},
	)
	c := NewBlockCache(p)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			pos := Position{x, y}
			require.Equal(t, sortedCodels(FindBlock(p, pos)), sortedCodels(c.Find(pos)))
		}
	}
	require.Equal(t, 3, c.Len())
}
