package rules_test

import (
	"testing"

	"chesscore/rules"
)

// Node counts for these positions are well established in the perft
// literature; any generator or apply bug shows up as a mismatch.
var perftCases = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{"initial d1", rules.FENStartingPosition, 1, 20},
	{"initial d2", rules.FENStartingPosition, 2, 400},
	{"initial d3", rules.FENStartingPosition, 3, 8902},
	{"initial d4", rules.FENStartingPosition, 4, 197281},

	{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
	{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
	{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},

	{"position3 d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
	{"position3 d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
	{"position3 d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},

	{"position4 d1", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
	{"position4 d2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
	{"position4 d3", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9467},

	{"position5 d1", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", 1, 44},
	{"position5 d2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", 2, 1486},
	{"position5 d3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", 3, 62379},

	{"position6 d1", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 1, 46},
	{"position6 d2", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 2, 2079},
	{"position6 d3", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},

	{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 1, 5},
	{"en passant d2", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2, 19},
	{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 1, 11},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := mustParse(t, tc.fen)
			if got := rules.Perft(p, tc.depth); got != tc.nodes {
				t.Fatalf("perft(%d) of %s: got %d want %d", tc.depth, tc.fen, got, tc.nodes)
			}
		})
	}
}

func TestPerftInitialDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 from the initial position is slow")
	}
	p := rules.StartingPosition()
	if got := rules.Perft(p, 5); got != 4865609 {
		t.Fatalf("perft(5) initial: got %d want 4865609", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	divide := rules.PerftDivide(p, 3)
	if len(divide) != 48 {
		t.Fatalf("divide entries: got %d want 48", len(divide))
	}
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	if sum != 97862 {
		t.Fatalf("divide sum: got %d want 97862", sum)
	}
}
