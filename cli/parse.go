package cli

import (
	"fmt"
	"strings"

	"chesscore/rules"
)

// ParseSquare converts algebraic coordinates ("e4") into a Square.
// Out-of-range coordinates surface rules.InvalidSquareError here, before
// they can reach the core.
func ParseSquare(s string) (rules.Square, error) {
	if len(s) != 2 {
		return rules.NoSquare, fmt.Errorf("cli: square %q must be two characters", s)
	}
	return rules.NewSquare(int(s[1]-'1'), int(s[0]-'a'))
}

// ParseMove reads coordinate notation ("e2e4", "e7e8q") and resolves it
// against the legal moves of the position, so the returned Move carries the
// correct capture/en-passant/castle flags. Castling is entered as the king
// move (e1g1). A promotion without a piece letter is rejected rather than
// guessed.
func ParseMove(text string, p rules.Position) (rules.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) < 4 || len(text) > 5 {
		return 0, fmt.Errorf("cli: move %q must look like e2e4 or e7e8q", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return 0, err
	}
	promo := rules.NoKind
	if len(text) == 5 {
		switch text[4] {
		case 'n':
			promo = rules.Knight
		case 'b':
			promo = rules.Bishop
		case 'r':
			promo = rules.Rook
		case 'q':
			promo = rules.Queen
		default:
			return 0, fmt.Errorf("cli: unknown promotion piece %q", text[4])
		}
	}

	var promotionsSeen bool
	for _, m := range p.LegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Promotion() != rules.NoKind {
			promotionsSeen = true
		}
		if m.Promotion() == promo {
			return m, nil
		}
	}
	if promotionsSeen && promo == rules.NoKind {
		return 0, fmt.Errorf("cli: move %q needs a promotion piece (q, r, b or n)", text)
	}
	return 0, fmt.Errorf("cli: %q is not a legal move here", text)
}
