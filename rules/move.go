package rules

// Move is an immutable move value packed into 32 bits:
// from (6), to (6), promotion kind (3), flags (4).
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveFlagShift  = 15
)

// MoveFlags mark the special character of a move. Promotion is indicated by
// a non-zero promotion kind rather than a flag.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
)

// NewMove assembles a move value.
func NewMove(from, to Square, promo PieceKind, flags MoveFlags) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(promo&0x7)<<movePromoShift |
		uint32(flags&0xF)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(uint32(m) >> moveToShift & 0x3F) }

// Promotion returns the colorless kind promoted to, or NoKind.
func (m Move) Promotion() PieceKind { return PieceKind(uint32(m) >> movePromoShift & 0x7) }

// Flags returns the special-move flag bits.
func (m Move) Flags() MoveFlags { return MoveFlags(uint32(m) >> moveFlagShift & 0xF) }

// IsCapture reports whether the move removes an enemy piece (including en passant).
func (m Move) IsCapture() bool { return m.Flags()&FlagCapture != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags()&FlagEnPassant != 0 }

// IsCastleKingside reports a kingside castle.
func (m Move) IsCastleKingside() bool { return m.Flags()&FlagCastleKingside != 0 }

// IsCastleQueenside reports a queenside castle.
func (m Move) IsCastleQueenside() bool { return m.Flags()&FlagCastleQueenside != 0 }

func promoLetter(k PieceKind) byte {
	switch k {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return 0
	}
}

// String renders the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if l := promoLetter(m.Promotion()); l != 0 {
		s += string(l)
	}
	return s
}
