package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionIntersectionXor(t *testing.T) {
	a := FromSquares(0, 1, 2)
	b := FromSquares(2, 3, 4)

	assert.Equal(t, FromSquares(0, 1, 2, 3, 4), a.Union(b))
	assert.Equal(t, FromSquares(2), a.Intersection(b))
	assert.Equal(t, FromSquares(0, 1, 3, 4), a.Xor(b))
}

func TestComplementAndContains(t *testing.T) {
	b := FromSquares(0)
	assert.True(t, b.Contains(0))
	assert.False(t, b.Contains(1))
	assert.False(t, b.Complement().Contains(0))
	assert.True(t, b.Complement().Contains(63))
}

func TestPopcount(t *testing.T) {
	assert.Equal(t, 0, Empty.Popcount())
	assert.Equal(t, 64, Universe.Popcount())
	assert.Equal(t, 3, FromSquares(5, 10, 63).Popcount())
}

func TestLowestSetSquare(t *testing.T) {
	assert.Equal(t, -1, Empty.LowestSetSquare())
	assert.Equal(t, 5, FromSquares(63, 5, 10).LowestSetSquare())
}

func TestPopLowestSetSquare(t *testing.T) {
	b := FromSquares(5, 10, 63)

	got := []int{}
	for b != Empty {
		got = append(got, PopLowestSetSquare(&b))
	}

	require.Equal(t, []int{5, 10, 63}, got)
	assert.Equal(t, Empty, b)
	assert.Equal(t, -1, PopLowestSetSquare(&b))
}

func TestToSquaresAscending(t *testing.T) {
	b := FromSquares(40, 0, 17, 63)
	assert.Equal(t, []int{0, 17, 40, 63}, b.ToSquares())
}

func TestStringRendersEightByEight(t *testing.T) {
	b := FromSquares(0, 63)
	s := b.String()
	assert.Contains(t, s, "a b c d e f g h")
	// 8 ranks + the file legend.
	assert.Equal(t, 9, len(splitLines(s)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
