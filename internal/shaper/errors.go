package shaper

import (
	"errors"
	"fmt"
)

// ErrNoSubject is returned by GuessPaper for a blank subject.
var ErrNoSubject = errors.New("subject is required")

// CallError reports a failed content-shaping call. The caller is expected to
// recover by rendering the request as submitted.
type CallError struct {
	Op  string
	Err error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Op, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// ErrInvalidDifficulty is returned for a difficulty outside easy|medium|hard.
type ErrInvalidDifficulty struct {
	Value string
}

func (e *ErrInvalidDifficulty) Error() string {
	return fmt.Sprintf("invalid difficulty %q: want easy, medium, or hard", e.Value)
}
