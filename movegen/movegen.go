// Package movegen enumerates pseudo-legal and legal moves for a position.
// Moves are emitted in a fixed piece-kind order (pawns, knights, bishops,
// rooks, queens, king), ascending by origin square within each kind, so
// that perft output and move ordering are deterministic across runs.
package movegen

import (
	"chesscore/attack"
	"chesscore/bitutil"
	"chesscore/move"
	"chesscore/position"
	"chesscore/sq"
)

var promotionPieces = [4]sq.PromotionPiece{sq.PromoteKnight, sq.PromoteBishop, sq.PromoteRook, sq.PromoteQueen}

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// in pos to list: moves that obey piece movement rules but may leave the
// mover's own king in check.
func GeneratePseudoLegal(pos *position.Position, list *move.List) {
	genPawnMoves(pos, list)
	genLeaperMoves(pos, list, sq.Knight, attack.KnightAttacks)
	genSliderMoves(pos, list, sq.Bishop, attack.BishopAttacks)
	genSliderMoves(pos, list, sq.Rook, attack.RookAttacks)
	genSliderMoves(pos, list, sq.Queen, attack.QueenAttacks)
	genLeaperMoves(pos, list, sq.King, attack.KingAttacks)
	genCastles(pos, list)
}

// GenerateLegal appends every strictly legal move for the side to move in
// pos to list, filtering the pseudo-legal set by make/attack-check/unmake:
// a move is legal only if, after playing it, the mover's own king is not
// attacked by the opponent.
func GenerateLegal(pos *position.Position, list *move.List) {
	var pseudo move.List
	GeneratePseudoLegal(pos, &pseudo)

	mover := pos.SideToMove
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if err := pos.MakeMove(m); err != nil {
			continue
		}
		kingSq := pos.Board.KingSquare(mover)
		if kingSq != sq.NoSquare && !attack.IsSquareAttacked(&pos.Board, kingSq, mover.Opponent()) {
			list.Push(m)
		}
		_ = pos.UnmakeMove(m)
	}
}

func genLeaperMoves(pos *position.Position, list *move.List, kind sq.PieceKind, attacks func(sq.Square) bitutil.Bitboard) {
	us := pos.SideToMove
	piece := sq.NewPiece(us, kind)
	ownOccupancy := pos.Board.PiecesOf(us)

	pieces := pos.Board.Bitboard(piece)
	for pieces != 0 {
		from := sq.Square(bitutil.PopLowestSetSquare(&pieces))
		targets := attacks(from) &^ ownOccupancy

		for targets != 0 {
			to := sq.Square(bitutil.PopLowestSetSquare(&targets))
			emit(pos, list, from, to)
		}
	}
}

func genSliderMoves(pos *position.Position, list *move.List, kind sq.PieceKind, attacks func(sq.Square, bitutil.Bitboard) bitutil.Bitboard) {
	us := pos.SideToMove
	piece := sq.NewPiece(us, kind)
	occupancy := pos.Board.Occupancy()
	ownOccupancy := pos.Board.PiecesOf(us)

	pieces := pos.Board.Bitboard(piece)
	for pieces != 0 {
		from := sq.Square(bitutil.PopLowestSetSquare(&pieces))
		targets := attacks(from, occupancy) &^ ownOccupancy

		for targets != 0 {
			to := sq.Square(bitutil.PopLowestSetSquare(&targets))
			emit(pos, list, from, to)
		}
	}
}

func emit(pos *position.Position, list *move.List, from, to sq.Square) {
	captured := pos.Board.PieceAt(to)
	list.Push(move.New(from, to, move.Flags{Captured: captured}))
}

func genPawnMoves(pos *position.Position, list *move.List) {
	us := pos.SideToMove
	pawn := sq.NewPiece(us, sq.Pawn)
	push := sq.Square(us.PushDirection())
	backRank := 8
	if us == sq.Black {
		backRank = 1
	}
	startRank := us.PawnStartRank()
	occupancy := pos.Board.Occupancy()
	enemyOccupancy := pos.Board.PiecesOf(us.Opponent())

	pawns := pos.Board.Bitboard(pawn)
	for pawns != 0 {
		from := sq.Square(bitutil.PopLowestSetSquare(&pawns))

		// Single push.
		one := from + push
		if one >= 0 && one < 64 && !occupancy.Contains(int(one)) {
			pushPawn(list, us, from, one, backRank)

			// Double push, only from the start rank and only if both
			// squares ahead are empty.
			if from.Rank() == startRank {
				two := one + push
				if two >= 0 && two < 64 && !occupancy.Contains(int(two)) {
					list.Push(move.New(from, two, move.Flags{DoublePush: true}))
				}
			}
		}

		// Captures, including en passant.
		targets := attack.PawnAttacks(from, us)
		capturable := targets & enemyOccupancy
		for capturable != 0 {
			to := sq.Square(bitutil.PopLowestSetSquare(&capturable))
			captured := pos.Board.PieceAt(to)
			pushPawnCapture(list, us, from, to, captured, backRank)
		}
		if pos.EnPassant != sq.NoSquare && targets.Contains(int(pos.EnPassant)) {
			capturedPawn := sq.NewPiece(us.Opponent(), sq.Pawn)
			list.Push(move.New(from, pos.EnPassant, move.Flags{Captured: capturedPawn, EnPassant: true}))
		}
	}
}

// backRank is the rank a pawn of color us lands on when it promotes: 8 for
// White, 1 for Black.
func pushPawn(list *move.List, us sq.Color, from, to sq.Square, backRank int) {
	if to.Rank() == backRank {
		pushPromotions(list, us, from, to, sq.NoPiece)
		return
	}
	list.Push(move.New(from, to, move.Flags{}))
}

func pushPawnCapture(list *move.List, us sq.Color, from, to sq.Square, captured sq.Piece, backRank int) {
	if to.Rank() == backRank {
		pushPromotions(list, us, from, to, captured)
		return
	}
	list.Push(move.New(from, to, move.Flags{Captured: captured}))
}

func pushPromotions(list *move.List, us sq.Color, from, to sq.Square, captured sq.Piece) {
	for _, promo := range promotionPieces {
		promoted := sq.NewPiece(us, promo.Kind())
		list.Push(move.New(from, to, move.Flags{Captured: captured, Promoted: promoted}))
	}
}

// castleSpec describes the static requirements for one castling move.
type castleSpec struct {
	right                 sq.CastlingRights
	kingFrom, kingTo      sq.Square
	rookFrom              sq.Square
	mustBeEmpty           []sq.Square
	mustNotBeAttackedBy   []sq.Square // king's start, transit, and landing squares
}

var castleSpecs = []castleSpec{
	{sq.WhiteKingSide, sq.E1, sq.G1, sq.H1, []sq.Square{sq.F1, sq.G1}, []sq.Square{sq.E1, sq.F1, sq.G1}},
	{sq.WhiteQueenSide, sq.E1, sq.C1, sq.A1, []sq.Square{sq.D1, sq.C1, sq.B1}, []sq.Square{sq.E1, sq.D1, sq.C1}},
	{sq.BlackKingSide, sq.E8, sq.G8, sq.H8, []sq.Square{sq.F8, sq.G8}, []sq.Square{sq.E8, sq.F8, sq.G8}},
	{sq.BlackQueenSide, sq.E8, sq.C8, sq.A8, []sq.Square{sq.D8, sq.C8, sq.B8}, []sq.Square{sq.E8, sq.D8, sq.C8}},
}

func genCastles(pos *position.Position, list *move.List) {
	us := pos.SideToMove
	them := us.Opponent()

	for _, spec := range castleSpecs {
		if !colorOwnsRight(us, spec.right) {
			continue
		}
		if !pos.CastlingRights.Has(spec.right) {
			continue
		}
		if pos.Board.PieceAt(spec.kingFrom) != sq.NewPiece(us, sq.King) {
			continue
		}
		if pos.Board.PieceAt(spec.rookFrom) != sq.NewPiece(us, sq.Rook) {
			continue
		}

		blocked := false
		for _, s := range spec.mustBeEmpty {
			if pos.Board.PieceAt(s) != sq.NoPiece {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		attacked := false
		for _, s := range spec.mustNotBeAttackedBy {
			if attack.IsSquareAttacked(&pos.Board, s, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}

		list.Push(move.New(spec.kingFrom, spec.kingTo, move.Flags{Castle: true}))
	}
}

func colorOwnsRight(c sq.Color, right sq.CastlingRights) bool {
	if c == sq.White {
		return right == sq.WhiteKingSide || right == sq.WhiteQueenSide
	}
	return right == sq.BlackKingSide || right == sq.BlackQueenSide
}
