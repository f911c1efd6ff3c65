// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package question

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOptions is returned when creating a question with no options.
	ErrNoOptions = errors.New("question requires at least one option")

	// ErrDuplicateOptions is returned when creating a question with a
	// repeated option.
	ErrDuplicateOptions = errors.New("question options must be unique")

	// ErrInvalidVote is returned for a ballot whose shape does not match
	// the question's options.
	ErrInvalidVote = errors.New("invalid vote")
)

// IllegalStateChangeError is returned for a transition out of a terminal
// state.
type IllegalStateChangeError struct {
	Current State
	New     State
}

func (e *IllegalStateChangeError) Error() string {
	return fmt.Sprintf("illegal state change from %s to %s", e.Current, e.New)
}

// IllegalActionError is returned for an operation that requires the question
// to be in a particular state.
type IllegalActionError struct {
	Required State
	Current  State
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("action requires state %s, question is %s", e.Required, e.Current)
}

// VoteStyleMismatchError is returned when a ballot's style does not match
// the question's.
type VoteStyleMismatchError struct {
	Expected Style
	Received Style
}

func (e *VoteStyleMismatchError) Error() string {
	return fmt.Sprintf("vote style mismatch: question is %s, vote is %s", e.Expected, e.Received)
}
