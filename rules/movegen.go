package rules

import "golang.org/x/exp/slices"

// promotionKinds is the order promotions are generated in; the canonical
// sort below also orders by this numeric kind.
var promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

// PseudoLegalMoves returns every move obeying piece movement and occupancy
// rules for the side to move, without king-safety filtering. The result is
// eagerly materialized and sorted into canonical ascending (from, to,
// promotion) order, so the same position always yields the same slice.
//
// Castling moves additionally require the relevant right, the rook on its
// home square, an empty path, and an unattacked start/transit/destination
// for the king; transit safety is castling's own movement rule, not a
// general check concern, so it belongs to generation.
func (p Position) PseudoLegalMoves() []Move {
	moves := p.pseudoLegalInto(make([]Move, 0, 64))
	slices.SortFunc(moves, func(a, b Move) int { return int(a) - int(b) })
	return moves
}

// The packed Move layout puts from in the low bits, then to, then promotion,
// so sorting raw move values above is exactly the canonical order. Flags sit
// highest but two generated moves never differ only in flags.

func (p Position) pseudoLegalInto(dst []Move) []Move {
	moves := dst[:0]
	us := p.sideToMove
	them := us.Other()

	ownOcc := p.occ[us]
	oppOcc := p.occ[them]
	allOcc := ownOcc | oppOcc

	// Pawns.
	push, startRank, promoRank := 8, 1, 7
	if us == Black {
		push, startRank, promoRank = -8, 6, 0
	}
	pawns := p.pawns[us]
	for pawns != 0 {
		from := popLSB(&pawns)
		fromSq := Square(from)

		one := from + push
		if one >= 0 && one < 64 && allOcc>>uint(one)&1 == 0 {
			if one/8 == promoRank {
				for _, k := range promotionKinds {
					moves = append(moves, NewMove(fromSq, Square(one), k, 0))
				}
			} else {
				moves = append(moves, NewMove(fromSq, Square(one), NoKind, 0))
				if from/8 == startRank {
					two := from + 2*push
					if allOcc>>uint(two)&1 == 0 {
						moves = append(moves, NewMove(fromSq, Square(two), NoKind, 0))
					}
				}
			}
		}

		caps := pawnCaptureBB[us][from]
		targets := caps & oppOcc
		for targets != 0 {
			to := popLSB(&targets)
			if to/8 == promoRank {
				for _, k := range promotionKinds {
					moves = append(moves, NewMove(fromSq, Square(to), k, FlagCapture))
				}
			} else {
				moves = append(moves, NewMove(fromSq, Square(to), NoKind, FlagCapture))
			}
		}
		if p.enPassant != NoSquare && caps&bb(p.enPassant) != 0 {
			moves = append(moves, NewMove(fromSq, p.enPassant, NoKind, FlagCapture|FlagEnPassant))
		}
	}

	appendTargets := func(fromSq Square, targets uint64) []Move {
		for targets != 0 {
			to := popLSB(&targets)
			var flags MoveFlags
			if oppOcc>>uint(to)&1 != 0 {
				flags = FlagCapture
			}
			moves = append(moves, NewMove(fromSq, Square(to), NoKind, flags))
		}
		return moves
	}

	// Knights.
	knights := p.knights[us]
	for knights != 0 {
		from := popLSB(&knights)
		moves = appendTargets(Square(from), knightAttackBB[from]&^ownOcc)
	}

	// Bishops.
	bishops := p.bishops[us]
	for bishops != 0 {
		from := popLSB(&bishops)
		moves = appendTargets(Square(from), bishopAttacks(from, allOcc)&^ownOcc)
	}

	// Rooks.
	rooks := p.rooks[us]
	for rooks != 0 {
		from := popLSB(&rooks)
		moves = appendTargets(Square(from), rookAttacks(from, allOcc)&^ownOcc)
	}

	// Queens.
	queens := p.queens[us]
	for queens != 0 {
		from := popLSB(&queens)
		moves = appendTargets(Square(from), (rookAttacks(from, allOcc)|bishopAttacks(from, allOcc))&^ownOcc)
	}

	// King.
	if ks := p.KingSquare(us); ks != NoSquare {
		moves = appendTargets(ks, kingAttackBB[ks]&^ownOcc)
		moves = p.appendCastles(moves)
	}

	return moves
}

// Castling geometry per side: king path e->g with rook on h, e->c with rook
// on a. Squares are given for White; Black adds 56.
type castleSpec struct {
	right    CastlingRights
	kingFrom Square
	kingTo   Square
	rookHome Square
	empty    []Square // must be unoccupied
	safe     []Square // king start/transit/destination, must be unattacked
	flag     MoveFlags
}

var castleSpecs = [2][2]castleSpec{
	White: {
		{CastleWhiteKingside, 4, 6, 7, []Square{5, 6}, []Square{4, 5, 6}, FlagCastleKingside},
		{CastleWhiteQueenside, 4, 2, 0, []Square{1, 2, 3}, []Square{4, 3, 2}, FlagCastleQueenside},
	},
	Black: {
		{CastleBlackKingside, 60, 62, 63, []Square{61, 62}, []Square{60, 61, 62}, FlagCastleKingside},
		{CastleBlackQueenside, 60, 58, 56, []Square{57, 58, 59}, []Square{60, 59, 58}, FlagCastleQueenside},
	},
}

func (p Position) appendCastles(moves []Move) []Move {
	us := p.sideToMove
	rook := MakePiece(us, Rook)
	king := MakePiece(us, King)
	for _, spec := range castleSpecs[us] {
		if p.castling&spec.right == 0 {
			continue
		}
		if p.pieces[spec.kingFrom] != king || p.pieces[spec.rookHome] != rook {
			continue
		}
		clear := true
		for _, sq := range spec.empty {
			if p.pieces[sq] != Empty {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		for _, sq := range spec.safe {
			if p.IsAttacked(sq, us.Other()) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		moves = append(moves, NewMove(spec.kingFrom, spec.kingTo, NoKind, spec.flag))
	}
	return moves
}
