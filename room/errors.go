// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package room

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAcceptingRooms is returned by CreateRoom once shutdown has begun.
	ErrNotAcceptingRooms = errors.New("not accepting new rooms")

	// ErrMissingActiveQuestion is returned by question operations when the
	// room has no current question.
	ErrMissingActiveQuestion = errors.New("room has no active question")

	// ErrQuestionNotFound is returned when a question id does not match the
	// room's current question.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAlreadyConnected is returned when a participant token already has a
	// live connection.
	ErrAlreadyConnected = errors.New("participant already connected")

	// ErrInvalidParticipantToken is returned for a token that was never
	// accepted into the room, or that was purged for inactivity.
	ErrInvalidParticipantToken = errors.New("invalid participant token")

	// ErrParticipantAlreadyConnected is returned by the connection manager
	// when a token is registered twice.
	ErrParticipantAlreadyConnected = errors.New("participant connection already registered")
)

// InvalidFieldsError is returned when a join submission's field set does not
// exactly match the room's required fields.
type InvalidFieldsError struct {
	Missing []string
	Extra   []string
}

func (e *InvalidFieldsError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing fields: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected fields: %s", strings.Join(e.Extra, ", ")))
	}
	if len(parts) == 0 {
		return "invalid fields"
	}
	return strings.Join(parts, "; ")
}
