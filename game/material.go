package game

import "chesscore/rules"

// insufficientMaterial reports a dead position: bare kings, or a bare king
// against king and one minor piece. Any pawn, rook or queen keeps mate
// possible, as do two or more minors in total (helpmates remain
// constructible, so the game is not auto-drawn).
func insufficientMaterial(p rules.Position) bool {
	minors := 0
	for _, c := range [2]rules.Color{rules.White, rules.Black} {
		if p.KindCount(c, rules.Pawn) > 0 ||
			p.KindCount(c, rules.Rook) > 0 ||
			p.KindCount(c, rules.Queen) > 0 {
			return false
		}
		minors += p.KindCount(c, rules.Knight) + p.KindCount(c, rules.Bishop)
	}
	return minors <= 1
}
