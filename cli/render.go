// Package cli is the host-side collaborator around the rules core: a
// fixed-width text renderer and a coordinate-notation move parser. The core
// exposes PieceAt, SideToMove and LegalMoves; everything here is derived
// from those.
package cli

import (
	"strings"

	"chesscore/rules"
)

var pieceLetters = map[rules.Piece]byte{
	rules.WhitePawn: 'P', rules.WhiteKnight: 'N', rules.WhiteBishop: 'B',
	rules.WhiteRook: 'R', rules.WhiteQueen: 'Q', rules.WhiteKing: 'K',
	rules.BlackPawn: 'p', rules.BlackKnight: 'n', rules.BlackBishop: 'b',
	rules.BlackRook: 'r', rules.BlackQueen: 'q', rules.BlackKing: 'k',
}

// RenderBoard draws the position from White's point of view, rank 8 at the
// top, with file and rank labels and a side-to-move line.
func RenderBoard(p rules.Position) string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString(" | ")
		for file := 0; file < 8; file++ {
			sq, _ := rules.NewSquare(rank, file)
			pc := p.PieceAt(sq)
			if pc == rules.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(pieceLetters[pc])
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	sb.WriteString(p.SideToMove().String())
	sb.WriteString(" to move\n")
	return sb.String()
}
