package rules

import "math/bits"

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece classification.
type PieceKind uint8

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is an occupant of a square. Empty carries no color: bits 0-2 hold the
// kind, bit 3 is set for Black, so Empty (0) is colorless by construction.
type Piece uint8

const Empty Piece = 0

const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | blackBit
	BlackKnight Piece = Piece(Knight) | blackBit
	BlackBishop Piece = Piece(Bishop) | blackBit
	BlackRook   Piece = Piece(Rook) | blackBit
	BlackQueen  Piece = Piece(Queen) | blackBit
	BlackKing   Piece = Piece(King) | blackBit
)

const blackBit Piece = 8

// MakePiece combines a side and a kind into a Piece.
func MakePiece(c Color, k PieceKind) Piece {
	if k == NoKind {
		return Empty
	}
	p := Piece(k)
	if c == Black {
		p |= blackBit
	}
	return p
}

// Kind returns the colorless classification of the piece.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// Color returns the owning side. Meaningless for Empty (reports White).
func (p Piece) Color() Color {
	if p&blackBit != 0 {
		return Black
	}
	return White
}

// Square indexes the board 0-63, a1=0, h1=7, a8=56, h8=63.
type Square int

const NoSquare Square = -1

// NewSquare builds a square from rank and file, both 0-7.
// Out-of-range coordinates yield an InvalidSquareError.
func NewSquare(rank, file int) (Square, error) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, &InvalidSquareError{Rank: rank, File: file}
	}
	return Square(rank*8 + file), nil
}

// Rank returns the square's rank 0-7 (rank 0 is White's back rank).
func (sq Square) Rank() int { return int(sq) / 8 }

// File returns the square's file 0-7 (file 0 is the a-file).
func (sq Square) File() int { return int(sq) % 8 }

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// CastlingRights is a bitmask of the four independent castling permissions.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside
)

// AllCastlingRights is the full set held in the initial position.
const AllCastlingRights = CastleWhiteKingside | CastleWhiteQueenside |
	CastleBlackKingside | CastleBlackQueenside

// Position is a complete board state: piece placement, side to move,
// castling rights, en-passant target, and move clocks. Positions are values;
// Apply returns a fresh Position and never mutates its input, so a published
// Position is safe for concurrent reads.
type Position struct {
	// Mailbox placement, one entry per square.
	pieces [64]Piece

	// Per-kind bitboards and per-side occupancy, indexed by Color.
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64
	occ     [2]uint64

	sideToMove Color
	castling   CastlingRights
	enPassant  Square

	halfMoveClock  int
	fullMoveNumber int

	key uint64
}

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	p, err := ParseFEN(FENStartingPosition)
	if err != nil {
		panic("rules: starting position FEN failed to parse: " + err.Error())
	}
	return p
}

// PieceAt returns the occupant of sq.
func (p Position) PieceAt(sq Square) Piece { return p.pieces[sq] }

// SideToMove reports which side plays next.
func (p Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the rights still held by both sides.
func (p Position) CastlingRights() CastlingRights { return p.castling }

// EnPassantTarget returns the en-passant capture square, or NoSquare.
func (p Position) EnPassantTarget() Square { return p.enPassant }

// HalfMoveClock counts half-moves since the last pawn move or capture.
func (p Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber starts at 1 and increments after each Black move.
func (p Position) FullMoveNumber() int { return p.fullMoveNumber }

// Key returns the position's Zobrist key. It covers placement, side to move,
// castling rights and the en-passant file, which is exactly the identity the
// threefold-repetition rule compares.
func (p Position) Key() uint64 { return p.key }

// KindCount returns how many pieces of the given side and kind are on the board.
func (p Position) KindCount(c Color, k PieceKind) int {
	return bits.OnesCount64(p.kindBB(c, k))
}

// Occupied returns the bitboard of all occupied squares.
func (p Position) Occupied() uint64 { return p.occ[White] | p.occ[Black] }

// OccupiedBy returns the occupancy bitboard for one side.
func (p Position) OccupiedBy(c Color) uint64 { return p.occ[c] }

// KingSquare returns the square of c's king, or NoSquare if absent
// (absent kings occur only in hand-built test positions).
func (p Position) KingSquare(c Color) Square {
	bb := p.kings[c]
	if bb == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(bb))
}

func (p Position) kindBB(c Color, k PieceKind) uint64 {
	switch k {
	case Pawn:
		return p.pawns[c]
	case Knight:
		return p.knights[c]
	case Bishop:
		return p.bishops[c]
	case Rook:
		return p.rooks[c]
	case Queen:
		return p.queens[c]
	case King:
		return p.kings[c]
	default:
		return 0
	}
}

func bb(sq Square) uint64 { return 1 << uint(sq) }

// popLSB removes and returns the index of the least significant set bit.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// placePiece puts a piece on an empty square, keeping bitboards, occupancy
// and the Zobrist key in sync.
func (p *Position) placePiece(sq Square, pc Piece) {
	if pc == Empty {
		return
	}
	c := pc.Color()
	p.pieces[sq] = pc
	p.occ[c] |= bb(sq)
	switch pc.Kind() {
	case Pawn:
		p.pawns[c] |= bb(sq)
	case Knight:
		p.knights[c] |= bb(sq)
	case Bishop:
		p.bishops[c] |= bb(sq)
	case Rook:
		p.rooks[c] |= bb(sq)
	case Queen:
		p.queens[c] |= bb(sq)
	case King:
		p.kings[c] |= bb(sq)
	}
	p.key ^= zobristPiece[pc][sq]
}

// liftPiece removes and returns the occupant of sq.
func (p *Position) liftPiece(sq Square) Piece {
	pc := p.pieces[sq]
	if pc == Empty {
		return Empty
	}
	c := pc.Color()
	mask := ^bb(sq)
	p.pieces[sq] = Empty
	p.occ[c] &= mask
	switch pc.Kind() {
	case Pawn:
		p.pawns[c] &= mask
	case Knight:
		p.knights[c] &= mask
	case Bishop:
		p.bishops[c] &= mask
	case Rook:
		p.rooks[c] &= mask
	case Queen:
		p.queens[c] &= mask
	case King:
		p.kings[c] &= mask
	}
	p.key ^= zobristPiece[pc][sq]
	return pc
}

// validate cross-checks the mailbox, the per-kind bitboards, the occupancy
// boards and the incremental Zobrist key. Exercised by tests.
func (p Position) validate() bool {
	var occ, pawns, knights, bishops, rooks, queens, kings [2]uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.pieces[sq]
		if pc == Empty {
			continue
		}
		c := pc.Color()
		bit := bb(sq)
		occ[c] |= bit
		switch pc.Kind() {
		case Pawn:
			pawns[c] |= bit
		case Knight:
			knights[c] |= bit
		case Bishop:
			bishops[c] |= bit
		case Rook:
			rooks[c] |= bit
		case Queen:
			queens[c] |= bit
		case King:
			kings[c] |= bit
		}
	}
	if occ != p.occ || pawns != p.pawns || knights != p.knights ||
		bishops != p.bishops || rooks != p.rooks || queens != p.queens || kings != p.kings {
		return false
	}
	return p.key == p.computeKey()
}
