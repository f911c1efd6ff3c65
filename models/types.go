// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/mchan/voteroom/question"
	"github.com/mchan/voteroom/room"
)

// WebSocket event type constants
const (
	EventQuestionUpdated = "questionUpdated"
	EventQuestionDeleted = "questionDeleted"
)

// Request types

type CreateRoomRequest struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type JoinRoomRequest struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

type DecideJoinRequestsRequest struct {
	Accept []string `json:"accept"`
	Reject []string `json:"reject"`
}

type QuestionRequest struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Style   string   `json:"style"`
}

type SetQuestionStateRequest struct {
	State string `json:"state"`
}

// Exactly one of Selection or SelectionOrder is set; the populated field
// determines the voting style of the ballot.
type VoteRequest struct {
	Selection      string   `json:"selection,omitempty"`
	SelectionOrder []string `json:"selection_order,omitempty"`
}

// Response types

type CreateRoomResponse struct {
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	Fields     []string `json:"fields"`
	AdminToken string   `json:"admin_token"`
}

type RoomInfoResponse struct {
	Name   string   `json:"name"`
	Code   string   `json:"code"`
	Fields []string `json:"fields"`
}

type JoinRoomResponse struct {
	ParticipantToken string `json:"participant_token"`
}

type JoinRequestsListResponse struct {
	LastUpdated time.Time              `json:"last_updated"`
	Requests    []room.JoinRequestInfo `json:"requests"`
}

type DecideJoinRequestsResponse struct {
	Accepted []string `json:"accepted"`
	Rejected []string `json:"rejected"`
	Failed   []string `json:"failed"`
}

type SubmitVoteResponse struct {
	Message string `json:"message"`
}

type ResultResponse struct {
	Type    question.ResultKind `json:"type"`
	Winner  string              `json:"winner,omitempty"`
	Winners []string            `json:"winners,omitempty"`
}

type VoteCountResponse struct {
	Count int `json:"count"`
}

// WebSocket event envelope

type QuestionEvent struct {
	Type      string                `json:"type"`
	Timestamp time.Time             `json:"timestamp"`
	Question  *question.Description `json:"question,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
