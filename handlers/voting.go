// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/models"
	"github.com/mchan/voteroom/question"
	"github.com/mchan/voteroom/room"
)

type VotingHandler struct {
	manager *room.Manager
}

func NewVotingHandler(manager *room.Manager) *VotingHandler {
	return &VotingHandler{manager: manager}
}

// SubmitVote handles POST /rooms/{code}/question/{questionID}/vote
// The ballot shape selects the style: {selection} casts a plurality vote,
// {selection_order} a preferential one.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}

	token := r.Header.Get(middleware.ParticipantTokenHeader)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusForbidden, "Participant token required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var v question.Vote
	switch {
	case req.Selection != "" && len(req.SelectionOrder) > 0:
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote must have either selection or selection_order, not both")
		return
	case req.Selection != "":
		v = question.Vote{Style: question.StylePlurality, Selection: req.Selection}
	case len(req.SelectionOrder) > 0:
		v = question.Vote{Style: question.StylePreferential, SelectionOrder: req.SelectionOrder}
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote requires selection or selection_order")
		return
	}

	err := rm.RegisterVote(r.PathValue("questionID"), token, v)
	if errors.Is(err, room.ErrInvalidParticipantToken) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid participant token")
		return
	}
	if err != nil {
		writeQuestionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Message: "vote recorded",
	})
}
