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

type QuestionHandler struct {
	manager *room.Manager
}

func NewQuestionHandler(manager *room.Manager) *QuestionHandler {
	return &QuestionHandler{manager: manager}
}

// GetQuestion handles GET /rooms/{code}/question
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}

	d, ok := rm.CurrentQuestion()
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No active question")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, d)
}

// PostQuestion handles POST /rooms/{code}/question
// Posting replaces any existing question; the new question starts open.
func (h *QuestionHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}
	if !requireAdmin(w, r, rm) {
		return
	}

	var req models.QuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	style, err := question.ParseStyle(req.Style)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := rm.UpdateQuestion(req.Prompt, req.Options, style)
	if errors.Is(err, question.ErrNoOptions) || errors.Is(err, question.ErrDuplicateOptions) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, d)
}

// DeleteQuestion handles DELETE /rooms/{code}/question
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}
	if !requireAdmin(w, r, rm) {
		return
	}

	d, ok := rm.CurrentQuestion()
	if !ok || !rm.RemoveQuestion() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No active question")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, d)
}

// SetQuestionState handles POST /rooms/{code}/question/{questionID}/state
func (h *QuestionHandler) SetQuestionState(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}
	if !requireAdmin(w, r, rm) {
		return
	}

	var req models.SetQuestionStateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	state, err := question.ParseState(req.State)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := rm.SetQuestionState(r.PathValue("questionID"), state)
	if err != nil {
		writeQuestionError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, d)
}

// GetResult handles GET /rooms/{code}/question/{questionID}/result
func (h *QuestionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}

	res, err := rm.QuestionResult(r.PathValue("questionID"))
	if err != nil {
		writeQuestionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultResponse{
		Type:    res.Kind,
		Winner:  res.Winner,
		Winners: res.Winners,
	})
}

// GetVoteCount handles GET /rooms/{code}/question/{questionID}/votes
func (h *QuestionHandler) GetVoteCount(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}
	if !requireAdmin(w, r, rm) {
		return
	}

	count, err := rm.QuestionVoteCount(r.PathValue("questionID"))
	if err != nil {
		writeQuestionError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.VoteCountResponse{Count: count})
}

// writeQuestionError maps question-scoped room errors to HTTP statuses.
func writeQuestionError(w http.ResponseWriter, err error) {
	var sce *question.IllegalStateChangeError
	var iae *question.IllegalActionError
	var vsm *question.VoteStyleMismatchError
	switch {
	case errors.Is(err, room.ErrMissingActiveQuestion):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No active question")
	case errors.Is(err, room.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	case errors.As(err, &sce):
		middleware.ErrorResponse(w, http.StatusConflict, sce.Error())
	case errors.As(err, &iae):
		middleware.ErrorResponse(w, http.StatusConflict, iae.Error())
	case errors.As(err, &vsm):
		middleware.ErrorResponse(w, http.StatusBadRequest, vsm.Error())
	case errors.Is(err, question.ErrInvalidVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote")
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
