// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package question

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Style selects how votes are cast and tallied.
type Style string

const (
	StylePlurality    Style = "plurality"
	StylePreferential Style = "preferential"
)

// ParseStyle validates a wire-format style string.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StylePlurality, StylePreferential:
		return Style(s), nil
	}
	return "", fmt.Errorf("unknown voting style %q", s)
}

// State is the question lifecycle state. Open and closed convert freely in
// both directions; finalized is terminal.
type State string

const (
	StateOpen      State = "open"
	StateClosed    State = "closed"
	StateFinalized State = "finalized"
)

// ParseState validates a wire-format state string.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateOpen, StateClosed, StateFinalized:
		return State(s), nil
	}
	return "", fmt.Errorf("unknown question state %q", s)
}

// Vote is a single ballot. Exactly one of Selection or SelectionOrder is
// meaningful, indicated by Style.
type Vote struct {
	Style          Style
	Selection      string
	SelectionOrder []string
}

// Question is one active poll within a room. It is not safe for concurrent
// use; the owning room serializes all access.
type Question struct {
	id      string
	prompt  string
	options []string
	style   Style
	state   State

	pluralityVotes    map[string]string
	preferentialVotes map[string][]string

	cachedResult *Result
}

// New creates a question in the open state. The option order is preserved
// and used for deterministic tie reporting.
func New(prompt string, options []string, style Style) (*Question, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if seen[opt] {
			return nil, ErrDuplicateOptions
		}
		seen[opt] = true
	}
	return &Question{
		id:                uuid.NewString(),
		prompt:            prompt,
		options:           slices.Clone(options),
		style:             style,
		state:             StateOpen,
		pluralityVotes:    make(map[string]string),
		preferentialVotes: make(map[string][]string),
	}, nil
}

func (q *Question) ID() string        { return q.id }
func (q *Question) Prompt() string    { return q.prompt }
func (q *Question) Options() []string { return slices.Clone(q.options) }
func (q *Question) Style() Style      { return q.style }
func (q *Question) State() State      { return q.state }

// SetState drives the lifecycle. Finalized is terminal; every other
// transition is allowed.
func (q *Question) SetState(next State) error {
	if q.state == StateFinalized {
		return &IllegalStateChangeError{Current: q.state, New: next}
	}
	q.state = next
	return nil
}

// RegisterVote records a ballot for the given participant token. A later
// vote from the same token overwrites the earlier one.
func (q *Question) RegisterVote(token string, v Vote) error {
	if q.state != StateOpen {
		return &IllegalActionError{Required: StateOpen, Current: q.state}
	}
	if v.Style != q.style {
		return &VoteStyleMismatchError{Expected: q.style, Received: v.Style}
	}

	switch q.style {
	case StylePlurality:
		if !slices.Contains(q.options, v.Selection) {
			return ErrInvalidVote
		}
		q.pluralityVotes[token] = v.Selection
	case StylePreferential:
		if !isPermutation(v.SelectionOrder, q.options) {
			return ErrInvalidVote
		}
		q.preferentialVotes[token] = slices.Clone(v.SelectionOrder)
	}

	q.cachedResult = nil
	return nil
}

// isPermutation reports whether order is a reordering of options: same
// length, no duplicates, every entry declared.
func isPermutation(order, options []string) bool {
	if len(order) != len(options) {
		return false
	}
	seen := make(map[string]bool, len(order))
	for _, o := range order {
		if seen[o] || !slices.Contains(options, o) {
			return false
		}
		seen[o] = true
	}
	return true
}

// VoteCount returns the number of distinct participant tokens that have a
// recorded ballot.
func (q *Question) VoteCount() int {
	switch q.style {
	case StylePreferential:
		return len(q.preferentialVotes)
	default:
		return len(q.pluralityVotes)
	}
}

// HasVoted reports whether the token has a recorded ballot.
func (q *Question) HasVoted(token string) bool {
	switch q.style {
	case StylePreferential:
		_, ok := q.preferentialVotes[token]
		return ok
	default:
		_, ok := q.pluralityVotes[token]
		return ok
	}
}

// Description is a read-only snapshot of a question, safe to hand to
// broadcast and transport code after the room's lock is released.
type Description struct {
	ID        string   `json:"id"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	Style     Style    `json:"style"`
	State     State    `json:"state"`
	VoteCount int      `json:"vote_count"`
}

// Describe snapshots the question's public fields.
func (q *Question) Describe() Description {
	return Description{
		ID:        q.id,
		Prompt:    q.prompt,
		Options:   slices.Clone(q.options),
		Style:     q.style,
		State:     q.state,
		VoteCount: q.VoteCount(),
	}
}

// Result tallies the current ballots. The outcome is cached until the next
// vote invalidates it.
func (q *Question) Result() Result {
	if q.cachedResult != nil {
		return *q.cachedResult
	}

	var r Result
	switch q.style {
	case StylePreferential:
		r = q.tallyPreferential()
	default:
		r = q.tallyPlurality()
	}
	q.cachedResult = &r
	return r
}
