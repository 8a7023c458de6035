package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/fen"
	"chesscore/internal/corpus"
	"chesscore/zobrist"
)

func TestCorpusFixturesMatchPerft(t *testing.T) {
	if testing.Short() {
		t.Skip("corpus fixtures include a slow depth-3 case; skipped with -short")
	}

	cases, err := corpus.Load("../internal/corpus/testdata/perft.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			p, err := fen.Parse(tc.FEN, zobrist.New())
			require.NoError(t, err)
			assert.Equal(t, tc.Nodes, Count(p, tc.Depth))
		})
	}
}

// Standard perft reference values for the starting position.
// See https://www.chessprogramming.org/Perft_Results
func TestStandardStartPositionPerft(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4+ perft is slow; skipped with -short")
	}

	keys := zobrist.New()
	p, err := fen.Parse(fen.StartPosition, keys)
	require.NoError(t, err)

	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tc := range cases {
		got := Count(p, tc.depth)
		assert.Equalf(t, tc.want, got, "perft(%d)", tc.depth)
	}
}

func TestPerftDepth1And2FastPath(t *testing.T) {
	keys := zobrist.New()
	p, err := fen.Parse(fen.StartPosition, keys)
	require.NoError(t, err)

	assert.Equal(t, uint64(20), Count(p, 1))
	assert.Equal(t, uint64(400), Count(p, 2))
}

// The Kiwipete position is the canonical perft stress test for castling,
// en passant, and promotion interactions.
// See https://www.chessprogramming.org/Perft_Results#Position_2
func TestKiwipetePositionPerftDepth1(t *testing.T) {
	keys := zobrist.New()
	p, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", keys)
	require.NoError(t, err)

	assert.Equal(t, uint64(48), Count(p, 1))
}

func TestDividePartitionsRootMoves(t *testing.T) {
	keys := zobrist.New()
	p, err := fen.Parse(fen.StartPosition, keys)
	require.NoError(t, err)

	results := Divide(p, 2)
	assert.Len(t, results, 20)

	var total uint64
	for _, n := range results {
		total += n
	}
	assert.Equal(t, uint64(400), total)
}

func TestFormatDivideIsSortedAndTotalsMatch(t *testing.T) {
	keys := zobrist.New()
	p, err := fen.Parse(fen.StartPosition, keys)
	require.NoError(t, err)

	out := FormatDivide(Divide(p, 2))
	assert.Contains(t, out, "Nodes searched: 400")
	// a2a3 sorts before b1a3 lexicographically; spot-check ordering holds.
	assert.Less(t, indexOf(out, "a2a3"), indexOf(out, "b1a3"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestPositionUnchangedAfterPerft(t *testing.T) {
	keys := zobrist.New()
	p, err := fen.Parse(fen.StartPosition, keys)
	require.NoError(t, err)
	before := fen.Serialize(p)

	Count(p, 3)

	assert.Equal(t, before, fen.Serialize(p), "perft must leave the root position exactly as it found it")
}
