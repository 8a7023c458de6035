// Package cli renders a Position as a colorized board diagram, for the
// uci command loop's "d" debug command and for test failure output.
package cli

import (
	"strings"

	"github.com/fatih/color"

	"chesscore/position"
	"chesscore/sq"
)

var pieceSymbols = [12]rune{
	'♙', '♘', '♗', '♖', '♕', '♔',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

var (
	whiteColor = color.New(color.FgWhite, color.Bold)
	blackColor = color.New(color.FgCyan, color.Bold)
)

// FormatBoard renders p's piece placement as an 8x8 diagram, rank 8 at the
// top, white pieces and black pieces in distinct colors.
func FormatBoard(p *position.Position) string {
	var b strings.Builder

	for rank := 8; rank >= 1; rank-- {
		b.WriteByte(byte('0' + rank))
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			piece := p.Board.PieceAt(sq.FromFileRank(file, rank))
			if piece == sq.NoPiece {
				b.WriteString(".  ")
				continue
			}
			glyph := string(pieceSymbols[piece])
			if piece.Color() == sq.White {
				b.WriteString(whiteColor.Sprint(glyph))
			} else {
				b.WriteString(blackColor.Sprint(glyph))
			}
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// FormatPosition renders p's full state: the board diagram plus side to
// move, en passant target, and castling rights, matching the summary block
// a UCI "d" command conventionally prints.
func FormatPosition(p *position.Position) string {
	var b strings.Builder
	b.WriteString(FormatBoard(p))

	b.WriteString("Active color: ")
	b.WriteString(p.SideToMove.String())

	b.WriteString("\nEn passant: ")
	if p.EnPassant == sq.NoSquare {
		b.WriteString("none")
	} else {
		b.WriteString(p.EnPassant.String())
	}

	b.WriteString("\nCastling rights: ")
	wrote := false
	if p.CastlingRights.Has(sq.WhiteKingSide) {
		b.WriteByte('K')
		wrote = true
	}
	if p.CastlingRights.Has(sq.WhiteQueenSide) {
		b.WriteByte('Q')
		wrote = true
	}
	if p.CastlingRights.Has(sq.BlackKingSide) {
		b.WriteByte('k')
		wrote = true
	}
	if p.CastlingRights.Has(sq.BlackQueenSide) {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte('\n')

	return b.String()
}
