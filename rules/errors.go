package rules

import "fmt"

// IllegalMoveError reports a move that is not in the legal set for the
// position it was applied to. The prior position is always left untouched.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("rules: illegal move %s", e.Move)
}

// InvalidSquareError reports a coordinate outside the 8x8 board. It is
// surfaced at the boundary, before a square ever reaches the core.
type InvalidSquareError struct {
	Rank, File int
}

func (e *InvalidSquareError) Error() string {
	return fmt.Sprintf("rules: square rank %d file %d out of bounds", e.Rank, e.File)
}
