package rules

// Perft counts the leaf nodes of the legal move tree at the given depth.
// Standard node counts for known positions pin down the whole
// generation/legality/apply pipeline at once.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.applyUnchecked(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts at the given depth,
// useful when a total disagrees with a reference and the offending subtree
// must be found.
func PerftDivide(p Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		result[m] = Perft(p.applyUnchecked(m), depth-1)
	}
	return result
}
