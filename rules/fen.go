package rules

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartingPosition is the FEN form of the standard initial position.
const FENStartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return Empty
	}
}

func charFromPiece(pc Piece) byte {
	letters := [...]byte{Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}
	ch := letters[pc.Kind()]
	if pc.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a Position from a FEN record. The two clock fields may be
// omitted; they default to 0 and 1.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, errors.New("invalid FEN: not enough fields")
	}

	var p Position
	p.enPassant = NoSquare
	p.fullMoveNumber = 1

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc := pieceFromChar(ch)
			if pc == Empty {
				return Position{}, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return Position{}, errors.New("invalid FEN: too many squares in rank")
			}
			p.placePiece(Square(rank*8+file), pc)
			file++
		}
		if file != 8 {
			return Position{}, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= CastleWhiteKingside
			case 'Q':
				p.castling |= CastleWhiteQueenside
			case 'k':
				p.castling |= CastleBlackKingside
			case 'q':
				p.castling |= CastleBlackQueenside
			default:
				return Position{}, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return Position{}, errors.New("invalid FEN: invalid en passant square")
		}
		file := fields[3][0]
		rank := fields[3][1]
		if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
			return Position{}, errors.New("invalid FEN: en passant square out of range")
		}
		p.enPassant = Square(int(rank-'1')*8 + int(file-'a'))
	}

	if len(fields) > 4 {
		half, err := strconv.Atoi(fields[4])
		if err != nil || half < 0 {
			return Position{}, errors.New("invalid FEN: halfmove clock is not a non-negative number")
		}
		p.halfMoveClock = half
	}
	if len(fields) > 5 {
		full, err := strconv.Atoi(fields[5])
		if err != nil || full < 1 {
			return Position{}, errors.New("invalid FEN: fullmove number is not a positive number")
		}
		p.fullMoveNumber = full
	}

	p.key = p.computeKey()
	return p, nil
}

// FEN renders the position as a FEN record.
func (p Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.pieces[rank*8+file]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}
