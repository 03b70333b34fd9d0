package rules

import "math/rand"

// Zobrist key tables for piece placement, castling rights, en-passant file
// and side to move.
var zobristPiece [16][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	// Fixed seed keeps keys reproducible across runs and tests.
	rnd := rand.New(rand.NewSource(0x5157))
	for pc := range zobristPiece {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeKey derives the Zobrist key from scratch. Apply maintains the key
// incrementally; this is the reference the validate check compares against.
func (p Position) computeKey() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if pc := p.pieces[sq]; pc != Empty {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.File()]
	}
	return key
}
