package rules

import "testing"

// These tests reach into the unexported board plumbing that every public
// operation leans on: the mailbox/bitboard bookkeeping and the Zobrist key.

func TestPlaceAndLiftKeepBoardsInSync(t *testing.T) {
	var p Position
	p.enPassant = NoSquare
	p.key = p.computeKey()

	e4, _ := NewSquare(3, 4)
	p.placePiece(e4, WhiteQueen)
	if p.pieces[e4] != WhiteQueen {
		t.Fatalf("mailbox missing the placed queen")
	}
	if p.queens[White]&(uint64(1)<<uint(e4)) == 0 {
		t.Fatalf("queen bitboard missing the placed queen")
	}
	if !p.validate() {
		t.Fatalf("position invalid after place")
	}

	if got := p.liftPiece(e4); got != WhiteQueen {
		t.Fatalf("liftPiece returned %v, want WhiteQueen", got)
	}
	if p.pieces[e4] != Empty || p.occ[White] != 0 {
		t.Fatalf("board not empty after lifting the only piece")
	}
	if !p.validate() {
		t.Fatalf("position invalid after lift")
	}
}

func TestPlaceLiftKeyRoundTrip(t *testing.T) {
	p := StartingPosition()
	before := p.key

	d4, _ := NewSquare(3, 3)
	p.placePiece(d4, BlackKnight)
	if p.key == before {
		t.Fatalf("key unchanged by placing a piece")
	}
	p.liftPiece(d4)
	if p.key != before {
		t.Fatalf("key not restored by lifting the same piece")
	}
	if p.key != p.computeKey() {
		t.Fatalf("incremental key %#x disagrees with recomputed %#x", p.key, p.computeKey())
	}
}

func TestValidateCatchesDesyncs(t *testing.T) {
	p := StartingPosition()
	if !p.validate() {
		t.Fatalf("starting position must validate")
	}

	broken := p
	broken.pieces[20] = WhitePawn // mailbox edit without bitboard update
	if broken.validate() {
		t.Fatalf("validate missed a mailbox/bitboard desync")
	}

	broken = p
	broken.key ^= 1
	if broken.validate() {
		t.Fatalf("validate missed a corrupted key")
	}
}

func TestZobristComponentsAreIndependent(t *testing.T) {
	a, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if a.key == b.key {
		t.Fatalf("side to move not part of the key")
	}
	if a.key^zobristSide != b.key {
		t.Fatalf("side component not a plain XOR toggle")
	}

	c, err := ParseFEN("4k3/8/8/8/4P3/8/8/4K3 b - e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	d, err := ParseFEN("4k3/8/8/8/4P3/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if c.key == d.key {
		t.Fatalf("en-passant file not part of the key")
	}
}
