package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/sq"
)

func TestAddPieceAndPieceAt(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhiteKnight, sq.G1))
	assert.Equal(t, sq.WhiteKnight, b.PieceAt(sq.G1))
	assert.Equal(t, sq.NoPiece, b.PieceAt(sq.F1))
}

func TestAddPieceOnOccupiedSquareFails(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhitePawn, sq.E2))

	err := b.AddPiece(sq.WhiteKnight, sq.E2)
	require.Error(t, err)
	var occErr *SquareOccupiedError
	assert.ErrorAs(t, err, &occErr)
}

func TestRemovePieceOnEmptySquareFails(t *testing.T) {
	var b Board
	_, err := b.RemovePiece(sq.E4)
	require.Error(t, err)
	var noPieceErr *NoPieceOnSquareError
	assert.ErrorAs(t, err, &noPieceErr)
}

func TestMovePiece(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhitePawn, sq.E2))

	moved, err := b.MovePiece(sq.E2, sq.E4)
	require.NoError(t, err)
	assert.Equal(t, sq.WhitePawn, moved)
	assert.Equal(t, sq.NoPiece, b.PieceAt(sq.E2))
	assert.Equal(t, sq.WhitePawn, b.PieceAt(sq.E4))
}

func TestPiecesOfAndOccupancy(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhitePawn, sq.E2))
	require.NoError(t, b.AddPiece(sq.BlackPawn, sq.E7))

	assert.True(t, b.PiecesOf(sq.White).Contains(int(sq.E2)))
	assert.False(t, b.PiecesOf(sq.White).Contains(int(sq.E7)))
	assert.Equal(t, 2, b.Occupancy().Popcount())
}

func TestMaterial(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhiteQueen, sq.D1))
	require.NoError(t, b.AddPiece(sq.WhiteKing, sq.E1))

	assert.Equal(t, 1000+50000, b.Material(sq.White))
	assert.Equal(t, 0, b.Material(sq.Black))
}

func TestDisjointInvariant(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhitePawn, sq.E4))
	assert.True(t, b.Disjoint())

	// Force an invariant violation directly through the raw bitboard setter.
	b.SetBitboard(sq.BlackPawn, b.Bitboard(sq.WhitePawn))
	assert.False(t, b.Disjoint())
}

func TestKingSquare(t *testing.T) {
	var b Board
	require.NoError(t, b.AddPiece(sq.WhiteKing, sq.E1))
	assert.Equal(t, sq.E1, b.KingSquare(sq.White))
	assert.Equal(t, sq.NoSquare, b.KingSquare(sq.Black))
}
