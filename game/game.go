// Package game drives turns over the rules core and detects terminal
// conditions: checkmate, stalemate, and the automatic draw rules.
package game

import (
	"errors"

	"chesscore/rules"
)

// Result is the outcome of a game as seen by the state machine.
type Result uint8

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	DrawByStalemate
	DrawByFiftyMove
	DrawByRepetition
	DrawByInsufficientMaterial
)

// Terminal reports whether no further moves are accepted.
func (r Result) Terminal() bool { return r != InProgress }

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0 (checkmate)"
	case BlackWins:
		return "0-1 (checkmate)"
	case DrawByStalemate:
		return "1/2-1/2 (stalemate)"
	case DrawByFiftyMove:
		return "1/2-1/2 (fifty-move rule)"
	case DrawByRepetition:
		return "1/2-1/2 (threefold repetition)"
	case DrawByInsufficientMaterial:
		return "1/2-1/2 (insufficient material)"
	default:
		return "*"
	}
}

// ErrGameOver is returned by Play once the game reached a terminal result.
var ErrGameOver = errors.New("game: position is terminal, no moves accepted")

// Game holds the sequence of positions from the start of play. The history
// is what repetition detection counts over; each entry is an independent
// value, so callers may retain any of them.
type Game struct {
	positions []rules.Position
	result    Result
}

// NewGame starts from the standard initial position.
func NewGame() *Game {
	g := &Game{positions: []rules.Position{rules.StartingPosition()}}
	g.result = g.evaluate()
	return g
}

// NewGameFromFEN starts from an arbitrary position. The given position is
// evaluated immediately, so a FEN that is already mate or a dead draw yields
// a terminal game.
func NewGameFromFEN(fen string) (*Game, error) {
	p, err := rules.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{positions: []rules.Position{p}}
	g.result = g.evaluate()
	return g, nil
}

// Position returns the current position.
func (g *Game) Position() rules.Position {
	return g.positions[len(g.positions)-1]
}

// Positions returns a copy of the position history, oldest first.
func (g *Game) Positions() []rules.Position {
	out := make([]rules.Position, len(g.positions))
	copy(out, g.positions)
	return out
}

// Result returns the game's current result.
func (g *Game) Result() Result { return g.result }

// LegalMoves returns the legal moves in the current position. Empty once
// the game is terminal.
func (g *Game) LegalMoves() []rules.Move {
	if g.result.Terminal() {
		return nil
	}
	return g.Position().LegalMoves()
}

// Play applies one move for the side to move. Illegal moves surface the
// rules.IllegalMoveError unchanged and leave the game untouched; moves after
// a terminal result return ErrGameOver.
func (g *Game) Play(m rules.Move) error {
	if g.result.Terminal() {
		return ErrGameOver
	}
	next, err := g.Position().Apply(m)
	if err != nil {
		return err
	}
	g.positions = append(g.positions, next)
	g.result = g.evaluate()
	return nil
}

// evaluate classifies the current position. The checks run in a fixed
// order: mate/stalemate first (they depend only on the legal move set),
// then the fifty-move clock, then repetition, then dead material.
func (g *Game) evaluate() Result {
	pos := g.Position()
	if !pos.HasLegalMoves() {
		if pos.InCheck(pos.SideToMove()) {
			if pos.SideToMove() == rules.White {
				return BlackWins
			}
			return WhiteWins
		}
		return DrawByStalemate
	}
	if pos.HalfMoveClock() >= 100 {
		return DrawByFiftyMove
	}
	if g.repetitions() >= 3 {
		return DrawByRepetition
	}
	if insufficientMaterial(pos) {
		return DrawByInsufficientMaterial
	}
	return InProgress
}

// repetitions counts how often the current position occurred in the game,
// current occurrence included. Zobrist keys stand in for full position
// identity: they cover placement, side to move, castling rights and the
// en-passant file.
func (g *Game) repetitions() int {
	key := g.Position().Key()
	n := 0
	for _, p := range g.positions {
		if p.Key() == key {
			n++
		}
	}
	return n
}
