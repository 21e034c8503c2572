package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyState   = errors.New("statemachine: state cannot be empty")
	ErrEmptyEvent   = errors.New("statemachine: event cannot be empty")
	ErrActionFailed = errors.New("statemachine: transition action failed")
)

// NoTransitionError is returned by Fire when no transition is registered for
// the current state and event.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q on event %q", e.State, e.Event)
}

// RejectedError is returned by Fire when every candidate transition was
// vetoed by a guard.
type RejectedError struct {
	State string
	Event string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transition from state %q on event %q rejected by guards", e.State, e.Event)
}

func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

func IsRejected(err error) bool {
	var e *RejectedError
	return errors.As(err, &e)
}
