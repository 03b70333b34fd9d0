package rules

import "math/bits"

// Precomputed attack masks for the fixed-offset pieces.
var knightAttackBB [64]uint64
var kingAttackBB [64]uint64

// pawnCaptureBB[color][sq] holds the squares a pawn of that color attacks
// from sq. Capture squares only; pushes never attack anything.
var pawnCaptureBB [2][64]uint64

// Directional rays from each square, origin excluded.
// Orthogonal directions: 0=N, 1=S, 2=E, 3=W.
var rookRayBB [64][4]uint64

// Diagonal directions: 0=NE, 1=NW, 2=SE, 3=SW.
var bishopRayBB [64][4]uint64

func init() {
	initLeaperTables()
	initRayTables()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		rank := sq / 8
		file := sq % 8
		for _, off := range knightOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				knightAttackBB[sq] |= uint64(1) << uint(r*8+f)
			}
		}
		for _, off := range kingOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				kingAttackBB[sq] |= uint64(1) << uint(r*8+f)
			}
		}
		if rank < 7 {
			if file > 0 {
				pawnCaptureBB[White][sq] |= uint64(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnCaptureBB[White][sq] |= uint64(1) << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnCaptureBB[Black][sq] |= uint64(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnCaptureBB[Black][sq] |= uint64(1) << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRayTables() {
	for sq := 0; sq < 64; sq++ {
		rank := sq / 8
		file := sq % 8

		var ray uint64
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		rookRayBB[sq][0] = ray

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
		}
		rookRayBB[sq][1] = ray

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		rookRayBB[sq][2] = ray

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
		}
		rookRayBB[sq][3] = ray

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRayBB[sq][0] = ray

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRayBB[sq][1] = ray

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRayBB[sq][2] = ray

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRayBB[sq][3] = ray
	}
}

// rookAttacks returns the orthogonal attack set from sq given occupancy,
// truncating each ray beyond its first blocker (the blocker itself included).
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := rookRayBB[sq][d]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if d == 0 || d == 2 { // increasing indices
				first = bits.TrailingZeros64(blockers)
			} else {
				first = 63 - bits.LeadingZeros64(blockers)
			}
			ray &^= rookRayBB[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacks is the diagonal counterpart of rookAttacks.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := bishopRayBB[sq][d]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if d == 0 || d == 1 { // NE, NW increase; SE, SW decrease
				first = bits.TrailingZeros64(blockers)
			} else {
				first = 63 - bits.LeadingZeros64(blockers)
			}
			ray &^= bishopRayBB[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// IsAttacked reports whether sq is attacked by any piece of the given side.
// Only pseudo-legal attacks are consulted (pawn capture squares, not pushes),
// so this predicate never needs legal-move filtering and cannot recurse into it.
func (p Position) IsAttacked(sq Square, by Color) bool {
	return p.attackedWithOcc(int(sq), by, p.Occupied())
}

// attackedWithOcc is IsAttacked against an explicit occupancy mask, letting
// callers probe hypothetical occupancies (castling transit, en passant).
func (p Position) attackedWithOcc(s int, by Color, occ uint64) bool {
	// A pawn of color `by` attacks s exactly when a pawn of the opposite
	// color standing on s would attack the pawn's square.
	if pawnCaptureBB[by.Other()][s]&p.pawns[by] != 0 {
		return true
	}
	if knightAttackBB[s]&p.knights[by] != 0 {
		return true
	}
	if kingAttackBB[s]&p.kings[by] != 0 {
		return true
	}
	if rq := p.rooks[by] | p.queens[by]; rq != 0 && rookAttacks(s, occ)&rq != 0 {
		return true
	}
	if bq := p.bishops[by] | p.queens[by]; bq != 0 && bishopAttacks(s, occ)&bq != 0 {
		return true
	}
	return false
}

// InCheck reports whether color's king is currently attacked.
func (p Position) InCheck(color Color) bool {
	ks := p.KingSquare(color)
	if ks == NoSquare {
		return false
	}
	return p.IsAttacked(ks, color.Other())
}
