package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is matched by every recoverable decision error.
	ErrIllegalMove = errors.New("game: illegal move")
	// ErrIllegalPlacement means the card is not held, the row is unknown or the row is full.
	ErrIllegalPlacement = errors.New("game: illegal placement")
	// ErrIllegalDiscard means the placed and discarded cards do not partition the dealt cards.
	ErrIllegalDiscard = errors.New("game: illegal discard")
	// ErrWrongPhase means the operation is not valid in the session's current phase.
	ErrWrongPhase = errors.New("game: wrong phase")
	// ErrNotYourTurn means a seat acted out of turn.
	ErrNotYourTurn = errors.New("game: not your turn")
	// ErrInvalidBoardState is a contract violation: a row over capacity or
	// an incomplete board submitted for scoring.
	ErrInvalidBoardState = errors.New("game: invalid board state")
)

// IllegalMoveError reports a rejected decision. The session state is unchanged
// and the same seat may retry.
type IllegalMoveError struct {
	Seat   int
	Err    error
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("seat %d: %v: %s", e.Seat, e.Err, e.Reason)
}

// Unwrap exposes both the specific cause and ErrIllegalMove to errors.Is.
func (e *IllegalMoveError) Unwrap() []error {
	return []error{ErrIllegalMove, e.Err}
}

func illegalMove(seat int, cause error, format string, args ...any) error {
	return &IllegalMoveError{Seat: seat, Err: cause, Reason: fmt.Sprintf(format, args...)}
}
