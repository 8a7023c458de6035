package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/sq"
	"chesscore/zobrist"
)

func TestParseStartPositionRoundTrips(t *testing.T) {
	keys := zobrist.New()
	p, err := Parse(StartPosition, keys)
	require.NoError(t, err)

	assert.Equal(t, sq.WhiteRook, p.Board.PieceAt(sq.A1))
	assert.Equal(t, sq.BlackKing, p.Board.PieceAt(sq.E8))
	assert.Equal(t, sq.White, p.SideToMove)
	assert.Equal(t, sq.AllCastlingRights, p.CastlingRights)
	assert.Equal(t, sq.NoSquare, p.EnPassant)
	assert.Equal(t, 0, p.HalfmoveClock)
	assert.Equal(t, 1, p.FullmoveNumber)
	assert.Equal(t, p.RecomputeKey(), p.PositionKey)

	assert.Equal(t, StartPosition, Serialize(p))
}

func TestParseTolerates4FieldForm(t *testing.T) {
	p, err := Parse("8/8/8/4k3/8/8/8/4K3 w - -", zobrist.New())
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfmoveClock)
	assert.Equal(t, 1, p.FullmoveNumber)
}

func TestParseEnPassantTarget(t *testing.T) {
	p, err := Parse("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2", zobrist.New())
	require.NoError(t, err)
	assert.Equal(t, sq.E3, p.EnPassant)
	assert.Equal(t, sq.Black, p.SideToMove)
}

func TestParseRejectsMalformedPlacement(t *testing.T) {
	_, err := Parse("bad/fen/string w KQkq - 0 1", zobrist.New())
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "piece placement", parseErr.Field)
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	_, err := Parse("only one field", zobrist.New())
	require.Error(t, err)
}

func TestParseRejectsBadActiveColor(t *testing.T) {
	_, err := Parse("8/8/8/4k3/8/8/8/4K3 x - - 0 1", zobrist.New())
	require.Error(t, err)
}

func TestSerializeNoCastlingRightsWritesDash(t *testing.T) {
	p, err := Parse("4k3/8/8/8/8/8/8/4K3 w - - 5 10", zobrist.New())
	require.NoError(t, err)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 5 10", Serialize(p))
}
