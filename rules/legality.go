package rules

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// own king attacked. Each candidate is applied hypothetically and the
// resulting position queried with IsAttacked; the attack predicate consults
// only pseudo-legal opponent attacks, so legality checking never recurses.
//
// Order is inherited from PseudoLegalMoves, so the legal set is also
// canonical and deterministic for a given position.
func (p Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	legal := pseudo[:0]
	us := p.sideToMove
	for _, m := range pseudo {
		if m.IsCastleKingside() || m.IsCastleQueenside() {
			// The generator pre-filters castle transit, but the filter stays
			// authoritative on its own: verify start and transit squares here
			// as well. The destination is covered by the post-apply check.
			if !p.castleTransitSafe(m) {
				continue
			}
		}
		next := p.applyUnchecked(m)
		if next.InCheck(us) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p Position) HasLegalMoves() bool {
	return len(p.LegalMoves()) > 0
}

func (p Position) castleTransitSafe(m Move) bool {
	from := m.From()
	transit := from + 1
	if m.IsCastleQueenside() {
		transit = from - 1
	}
	them := p.sideToMove.Other()
	return !p.IsAttacked(from, them) && !p.IsAttacked(transit, them)
}
