package game_test

import (
	"errors"
	"testing"

	"chesscore/game"
	"chesscore/rules"
)

func play(t *testing.T, g *game.Game, uci string) {
	t.Helper()
	m, err := parseUCI(g.Position(), uci)
	if err != nil {
		t.Fatalf("%s: %v", uci, err)
	}
	if err := g.Play(m); err != nil {
		t.Fatalf("Play(%s): %v", uci, err)
	}
}

func parseUCI(p rules.Position, uci string) (rules.Move, error) {
	for _, m := range p.LegalMoves() {
		if m.String() == uci {
			return m, nil
		}
	}
	return 0, errors.New("no legal move " + uci)
}

func newGameFromFEN(t *testing.T, fen string) *game.Game {
	t.Helper()
	g, err := game.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

func TestFoolsMate(t *testing.T) {
	g := game.NewGame()
	for i, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		play(t, g, uci)
		if g.Result() != game.InProgress {
			t.Fatalf("terminal after %d plies: %v", i+1, g.Result())
		}
	}
	play(t, g, "d8h4")

	if g.Result() != game.BlackWins {
		t.Fatalf("after the mating queen move: got %v want BlackWins", g.Result())
	}
	if got := len(g.Positions()); got != 5 {
		t.Fatalf("history length: got %d want 5", got)
	}
	if g.LegalMoves() != nil {
		t.Fatalf("terminal game still offers moves")
	}

	m, err := parseUCIAny(g.Position(), "e1f2")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Play(m); !errors.Is(err, game.ErrGameOver) {
		t.Fatalf("Play after mate: got %v want ErrGameOver", err)
	}
}

// parseUCIAny builds a move without consulting the legal move list, for
// probing a finished game.
func parseUCIAny(p rules.Position, uci string) (rules.Move, error) {
	fromFile := int(uci[0] - 'a')
	fromRank := int(uci[1] - '1')
	toFile := int(uci[2] - 'a')
	toRank := int(uci[3] - '1')
	from, err := rules.NewSquare(fromRank, fromFile)
	if err != nil {
		return 0, err
	}
	to, err := rules.NewSquare(toRank, toFile)
	if err != nil {
		return 0, err
	}
	return rules.NewMove(from, to, rules.NoKind, 0), nil
}

func TestStalemateFromFEN(t *testing.T) {
	g := newGameFromFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if g.Result() != game.DrawByStalemate {
		t.Fatalf("got %v want DrawByStalemate", g.Result())
	}
}

func TestBackRankMateFromFEN(t *testing.T) {
	g := newGameFromFEN(t, "7r/8/8/8/8/6k1/5p2/7K w - - 0 1")
	if g.Result() != game.BlackWins {
		t.Fatalf("got %v want BlackWins", g.Result())
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want game.Result
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", game.DrawByInsufficientMaterial},
		{"4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", game.DrawByInsufficientMaterial},
		{"4k3/8/8/8/8/8/8/2N1K3 b - - 0 1", game.DrawByInsufficientMaterial},
		{"2n1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", game.InProgress},
		{"4k3/8/8/8/8/8/8/2R1K3 w - - 0 1", game.InProgress},
		{"4k3/7p/8/8/8/8/8/4K3 w - - 0 1", game.InProgress},
	}
	for _, tc := range cases {
		g := newGameFromFEN(t, tc.fen)
		if g.Result() != tc.want {
			t.Errorf("%s: got %v want %v", tc.fen, g.Result(), tc.want)
		}
	}
}

func TestThreefoldRepetitionOnThirdOccurrence(t *testing.T) {
	g := game.NewGame()
	shuffle := []string{
		"g1f3", "g8f6", "f3g1", "f6g8", // second occurrence of the start
		"g1f3", "g8f6", "f3g1", "f6g8", // third occurrence
	}
	for i, uci := range shuffle {
		if g.Result() != game.InProgress {
			t.Fatalf("terminal before ply %d: %v", i+1, g.Result())
		}
		play(t, g, uci)
	}
	if g.Result() != game.DrawByRepetition {
		t.Fatalf("after third occurrence: got %v want DrawByRepetition", g.Result())
	}
}

func TestRepetitionDistinguishesCastlingRights(t *testing.T) {
	// Shuffling the rook loses a castling right, so the position after the
	// shuffle is not identical to the position before it.
	g := newGameFromFEN(t, "r3k3/8/8/8/8/8/8/4K2R w K - 0 1")
	for _, uci := range []string{
		"h1h2", "a8a7", "h2h1", "a7a8",
		"h1h2", "a8a7", "h2h1", "a7a8",
	} {
		play(t, g, uci)
	}
	// The start position still has the kingside right; every rights-less
	// arrangement has occurred only twice so far.
	if g.Result() != game.InProgress {
		t.Fatalf("rights change must break position identity: got %v", g.Result())
	}
	play(t, g, "h1h2")
	if g.Result() != game.DrawByRepetition {
		t.Fatalf("after the genuine third occurrence: got %v", g.Result())
	}
}

func TestFiftyMoveRule(t *testing.T) {
	g := newGameFromFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 98 60")
	play(t, g, "a1a2")
	if g.Result() != game.InProgress {
		t.Fatalf("at 99 half-moves: got %v want InProgress", g.Result())
	}
	play(t, g, "e8e7")
	if g.Result() != game.DrawByFiftyMove {
		t.Fatalf("at 100 half-moves: got %v want DrawByFiftyMove", g.Result())
	}
}

func TestCheckmatePreemptsFiftyMoveClock(t *testing.T) {
	// The mating move is made with the clock already at the threshold; mate
	// outranks the draw.
	g := newGameFromFEN(t, "7k/8/6K1/8/8/8/8/1Q6 w - - 99 80")
	play(t, g, "b1h7")
	if g.Result() != game.WhiteWins {
		t.Fatalf("mate on the hundredth half-move: got %v want WhiteWins", g.Result())
	}
}

func TestIllegalMoveLeavesGameUntouched(t *testing.T) {
	g := game.NewGame()
	before := g.Position().FEN()

	m, err := parseUCIAny(g.Position(), "e2e5")
	if err != nil {
		t.Fatal(err)
	}
	playErr := g.Play(m)
	var illegal *rules.IllegalMoveError
	if !errors.As(playErr, &illegal) {
		t.Fatalf("expected IllegalMoveError, got %v", playErr)
	}
	if g.Position().FEN() != before || len(g.Positions()) != 1 {
		t.Fatalf("game state changed by a rejected move")
	}
	if g.Result() != game.InProgress {
		t.Fatalf("result changed by a rejected move: %v", g.Result())
	}
}

func TestResultStrings(t *testing.T) {
	cases := map[game.Result]string{
		game.InProgress:                 "*",
		game.WhiteWins:                  "1-0 (checkmate)",
		game.BlackWins:                  "0-1 (checkmate)",
		game.DrawByStalemate:            "1/2-1/2 (stalemate)",
		game.DrawByFiftyMove:            "1/2-1/2 (fifty-move rule)",
		game.DrawByRepetition:           "1/2-1/2 (threefold repetition)",
		game.DrawByInsufficientMaterial: "1/2-1/2 (insufficient material)",
	}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Errorf("%d.String(): got %q want %q", r, got, want)
		}
	}
}
