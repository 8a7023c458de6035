// Package fen converts between Forsyth-Edwards Notation strings and
// Position values. Unlike a panic-on-garbage-in parser, Parse reports a
// typed error for every malformed field so a UCI front end can reject bad
// input without taking the engine down.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"chesscore/position"
	"chesscore/sq"
	"chesscore/zobrist"
)

// StartPosition is the standard initial position in FEN.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError reports why a FEN string could not be parsed, naming the
// field and the raw text that failed.
type ParseError struct {
	Field string
	Value string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: field %s (%q): %s", e.Field, e.Value, e.Msg)
}

var pieceFromLetter = map[byte]sq.Piece{
	'P': sq.WhitePawn, 'N': sq.WhiteKnight, 'B': sq.WhiteBishop,
	'R': sq.WhiteRook, 'Q': sq.WhiteQueen, 'K': sq.WhiteKing,
	'p': sq.BlackPawn, 'n': sq.BlackKnight, 'b': sq.BlackBishop,
	'r': sq.BlackRook, 'q': sq.BlackQueen, 'k': sq.BlackKing,
}

// Parse parses a FEN string into a fresh Position, hashed against keys.
// The trailing halfmove-clock and fullmove-number fields are optional; if
// absent they default to 0 and 1 respectively, tolerating the 4-field FEN
// variant some tools emit.
func Parse(fenStr string, keys *zobrist.Keys) (*position.Position, error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 4 && len(fields) != 6 {
		return nil, &ParseError{Field: "fen", Value: fenStr, Msg: "expected 4 or 6 space-separated fields"}
	}

	p := position.New(keys)

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = sq.White
	case "b":
		p.SideToMove = sq.Black
	default:
		return nil, &ParseError{Field: "active color", Value: fields[1], Msg: "must be 'w' or 'b'"}
	}

	rights, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, err
	}
	p.CastlingRights = rights

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	p.EnPassant = ep

	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	if len(fields) == 6 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, &ParseError{Field: "halfmove clock", Value: fields[4], Msg: "must be a non-negative integer"}
		}
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, &ParseError{Field: "fullmove number", Value: fields[5], Msg: "must be a positive integer"}
		}
		p.HalfmoveClock = halfmove
		p.FullmoveNumber = fullmove
	}

	p.PositionKey = p.RecomputeKey()
	return p, nil
}

func parsePlacement(p *position.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &ParseError{Field: "piece placement", Value: field, Msg: "must have 8 ranks separated by '/'"}
	}

	for i, rankStr := range ranks {
		rank := 8 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceFromLetter[c]
				if !ok {
					return &ParseError{Field: "piece placement", Value: field, Msg: fmt.Sprintf("unrecognized piece letter %q", c)}
				}
				if file > 7 {
					return &ParseError{Field: "piece placement", Value: field, Msg: "rank overflows 8 files"}
				}
				if err := p.Board.AddPiece(piece, sq.FromFileRank(file, rank)); err != nil {
					return &ParseError{Field: "piece placement", Value: field, Msg: err.Error()}
				}
				file++
			}
		}
		if file != 8 {
			return &ParseError{Field: "piece placement", Value: field, Msg: "rank does not cover all 8 files"}
		}
	}
	return nil
}

func parseCastlingRights(field string) (sq.CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights sq.CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= sq.WhiteKingSide
		case 'Q':
			rights |= sq.WhiteQueenSide
		case 'k':
			rights |= sq.BlackKingSide
		case 'q':
			rights |= sq.BlackQueenSide
		default:
			return 0, &ParseError{Field: "castling rights", Value: field, Msg: fmt.Sprintf("unrecognized character %q", field[i])}
		}
	}
	return rights, nil
}

func parseEnPassant(field string) (sq.Square, error) {
	if field == "-" {
		return sq.NoSquare, nil
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return sq.NoSquare, &ParseError{Field: "en passant target", Value: field, Msg: "must be '-' or a square like 'e3'"}
	}
	file := int(field[0] - 'a')
	rank := int(field[1] - '0')
	return sq.FromFileRank(file, rank), nil
}

// Serialize renders p as a FEN string.
func Serialize(p *position.Position) string {
	var b strings.Builder
	b.Grow(64)

	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Board.PieceAt(sq.FromFileRank(file, rank))
			if piece == sq.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(piece.Letter())
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 1 {
			b.WriteByte('/')
		}
	}

	if p.SideToMove == sq.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

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
	b.WriteByte(' ')

	if p.EnPassant == sq.NoSquare {
		b.WriteString("- ")
	} else {
		b.WriteString(p.EnPassant.String())
		b.WriteByte(' ')
	}

	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))
	return b.String()
}
