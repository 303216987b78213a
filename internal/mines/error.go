package mines

import "fmt"

// ParameterError is returned by generators for impossible board parameters.
type ParameterError struct {
	Width, Height, BombCount int
}

// [ParameterError] implements [error]
func (e *ParameterError) Error() string {
	switch {
	case e.Width <= 0 || e.Height <= 0 || e.BombCount <= 0:
		return "width, height and bomb count must be greater than zero"
	case e.BombCount > e.Width*e.Height:
		return fmt.Sprintf(
			"too big bomb count (%d > %d * %d)", e.BombCount, e.Width, e.Height,
		)
	default:
		return "invalid board parameters"
	}
}

// BoardError is returned when a board has a malformed shape.
type BoardError struct {
	Reason string
}

// [BoardError] implements [error]
func (e *BoardError) Error() string {
	return e.Reason
}

type MoveErrorKind int8

const (
	OutOfBounds MoveErrorKind = iota + 1
	AlreadyRevealed
	GameOver
)

func (k MoveErrorKind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case AlreadyRevealed:
		return "already revealed"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// MoveError is returned by [Logic.Suggest] when a move is rejected. No state
// is changed by a rejected move.
type MoveError struct {
	Kind MoveErrorKind
	X, Y int
}

var (
	ErrOutOfBounds     = &MoveError{Kind: OutOfBounds}
	ErrAlreadyRevealed = &MoveError{Kind: AlreadyRevealed}
	ErrGameOver        = &MoveError{Kind: GameOver}
)

// [MoveError] implements [error]
func (e *MoveError) Error() string {
	switch e.Kind {
	case OutOfBounds:
		return fmt.Sprintf("cell %d:%d is out of bounds", e.X, e.Y)
	case AlreadyRevealed:
		return fmt.Sprintf("cell %d:%d is already opened", e.X, e.Y)
	case GameOver:
		return "game is already over"
	default:
		return "invalid move"
	}
}

// Is reports whether target is a [MoveError] of the same kind, so that
// errors.Is(err, ErrGameOver) works regardless of coordinates.
func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	return ok && t.Kind == e.Kind
}
