package rules

// Apply produces the successor position for a legal move. If the move is not
// in LegalMoves(p) it returns an IllegalMoveError and the zero Position; the
// receiver is never touched either way, so callers keep their prior state on
// failure. This is the single legality enforcement point for hosts.
func (p Position) Apply(m Move) (Position, error) {
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return p.applyUnchecked(m), nil
		}
	}
	return Position{}, &IllegalMoveError{Move: m}
}

// applyUnchecked performs every state update for a move assumed to obey
// piece-movement rules: capture removal (including the passed pawn on en
// passant), rook relocation on castling, right revocation, en-passant
// target, clocks, side to move, and the Zobrist key. The receiver is a
// value, so the caller's position is untouched.
func (p Position) applyUnchecked(m Move) Position {
	from := m.From()
	to := m.To()
	moved := p.pieces[from]
	us := p.sideToMove

	// Clear the old en-passant component first; a new one is set only by a
	// double push below.
	if p.enPassant != NoSquare {
		p.key ^= zobristEnPassant[p.enPassant.File()]
	}
	p.enPassant = NoSquare

	captured := Empty
	if m.IsEnPassant() {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		captured = p.liftPiece(capSq)
	} else if m.IsCapture() {
		captured = p.liftPiece(to)
	}

	p.liftPiece(from)
	if promo := m.Promotion(); promo != NoKind {
		p.placePiece(to, MakePiece(us, promo))
	} else {
		p.placePiece(to, moved)
	}

	if m.IsCastleKingside() || m.IsCastleQueenside() {
		rookFrom, rookTo := castleRookSquares(m)
		rook := p.liftPiece(rookFrom)
		p.placePiece(rookTo, rook)
	}

	// Revoke castling rights on king moves, rook moves off their home
	// squares, and rook captures on their home squares.
	newRights := p.castling
	switch moved {
	case WhiteKing:
		newRights &^= CastleWhiteKingside | CastleWhiteQueenside
	case BlackKing:
		newRights &^= CastleBlackKingside | CastleBlackQueenside
	}
	newRights &^= rookHomeRights(from)
	if captured != Empty && captured.Kind() == Rook {
		newRights &^= rookHomeRights(to)
	}
	if newRights != p.castling {
		p.key ^= zobristCastle[p.castling]
		p.key ^= zobristCastle[newRights]
		p.castling = newRights
	}

	// A double pawn push exposes the passed-over square to en passant.
	if moved.Kind() == Pawn && (to-from == 16 || from-to == 16) {
		ep := from + 8
		if us == Black {
			ep = from - 8
		}
		p.enPassant = ep
		p.key ^= zobristEnPassant[ep.File()]
	}

	if moved.Kind() == Pawn || captured != Empty {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}

	p.sideToMove = us.Other()
	p.key ^= zobristSide

	return p
}

// castleRookSquares maps a castle move to its rook relocation.
func castleRookSquares(m Move) (from, to Square) {
	king := m.From()
	if m.IsCastleKingside() {
		return king + 3, king + 1
	}
	return king - 4, king - 1
}

// rookHomeRights returns the castling right anchored to a rook home square.
func rookHomeRights(sq Square) CastlingRights {
	switch sq {
	case 0:
		return CastleWhiteQueenside
	case 7:
		return CastleWhiteKingside
	case 56:
		return CastleBlackQueenside
	case 63:
		return CastleBlackKingside
	default:
		return 0
	}
}
