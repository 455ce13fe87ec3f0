package takrules

import (
	"errors"
	"fmt"
)

// Reasons a move can be rejected. Every rejection is returned wrapped in a
// *MoveError and leaves the game untouched.
var (
	ErrOutOfBounds                = errors.New("square is off the board")
	ErrOccupiedSquare             = errors.New("square is occupied")
	ErrNoCapstonesLeft            = errors.New("player has no capstones left")
	ErrNoStonesLeft               = errors.New("player has no stones left")
	ErrInvalidSignature           = errors.New("invalid move signature for this board")
	ErrEmptySource                = errors.New("moving from an empty square")
	ErrNotController              = errors.New("cannot move a stack you don't control")
	ErrTargetOffBoard             = errors.New("target square is off the board")
	ErrMustCrushAlone             = errors.New("the capstone must move alone to crush a wall")
	ErrCannotCrushWithoutCapstone = errors.New("cannot crush a wall without a capstone")
	ErrCannotLandOnCapstone       = errors.New("cannot move onto a capstone")
	ErrBlockedByNonFlat           = errors.New("cannot move through a wall or capstone")
	ErrIllegalDuringOpening       = errors.New("only flat placements are allowed in the opening")
	ErrUnknownDirection           = errors.New("unknown movement direction")
)

// MoveError is a rejected move and the reason it was rejected.
type MoveError struct {
	Move string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("illegal move %q: %v", e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func reject(m *Move, err error) error {
	return &MoveError{Move: m.String(), Err: err}
}
