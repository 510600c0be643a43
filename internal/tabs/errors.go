package tabs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateItem is returned when adding a value the control already holds.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrUnknownItem is returned when an operation names a value that was never added.
	ErrUnknownItem = errors.New("unknown item")
)

// ItemError records the operation and item label that caused a rejection.
type ItemError struct {
	Op    string
	Label string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Label, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
