package chess

import (
	"errors"
	"fmt"
)

var (
	ErrKingNotFound  = errors.New("king not found")
	ErrInvalidSquare = errors.New("invalid square")
	ErrMissingPiece  = errors.New("no piece on source square")
)

// InvariantError is the panic value used when a position is corrupted.
// Callers should never recover from it and keep playing.
type InvariantError struct {
	Err    error
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func invariant(err error, format string, args ...any) {
	panic(&InvariantError{Err: err, Detail: fmt.Sprintf(format, args...)})
}
