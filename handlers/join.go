// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/models"
	"github.com/mchan/voteroom/room"
)

type JoinHandler struct {
	manager *room.Manager
}

func NewJoinHandler(manager *room.Manager) *JoinHandler {
	return &JoinHandler{manager: manager}
}

// RequestJoin handles POST /rooms/{code}/join
// The request long-polls until the admin decides or the join window closes.
func (h *JoinHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}

	var req models.JoinRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Fields == nil {
		req.Fields = map[string]string{}
	}

	res, err := rm.RequestJoin(r.Context(), req.Name, req.Fields)
	var ife *room.InvalidFieldsError
	if errors.As(err, &ife) {
		middleware.ErrorResponse(w, http.StatusBadRequest, ife.Error())
		return
	}
	if err != nil {
		// the caller disconnected before a decision; nothing to write
		return
	}

	switch res.Status {
	case room.JoinAccepted:
		middleware.JSONResponse(w, http.StatusOK, models.JoinRoomResponse{
			ParticipantToken: res.Token,
		})
	case room.JoinRejected:
		middleware.ErrorResponse(w, http.StatusForbidden, "Join request rejected")
	case room.JoinTimeout:
		middleware.ErrorResponse(w, http.StatusForbidden, "Join request timed out")
	case room.JoinRoomClosing:
		middleware.ErrorResponse(w, http.StatusNotFound, "Room is closing")
	}
}

// ListJoinRequests handles GET /rooms/{code}/join-requests
func (h *JoinHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}
	if !requireAdmin(w, r, rm) {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.JoinRequestsListResponse{
		LastUpdated: time.Now(),
		Requests:    rm.PendingJoinRequests(),
	})
}

// DecideJoinRequests handles POST /rooms/{code}/join-requests
func (h *JoinHandler) DecideJoinRequests(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}
	if !requireAdmin(w, r, rm) {
		return
	}

	var req models.DecideJoinRequestsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Accept) == 0 && len(req.Reject) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no decisions provided")
		return
	}

	resp := models.DecideJoinRequestsResponse{
		Accepted: []string{},
		Rejected: []string{},
		Failed:   []string{},
	}
	for _, token := range req.Accept {
		if rm.HandleJoinRequest(true, token) {
			resp.Accepted = append(resp.Accepted, token)
		} else {
			resp.Failed = append(resp.Failed, token)
		}
	}
	for _, token := range req.Reject {
		if rm.HandleJoinRequest(false, token) {
			resp.Rejected = append(resp.Rejected, token)
		} else {
			resp.Failed = append(resp.Failed, token)
		}
	}

	slog.Info("join requests decided",
		"room", rm.Code(),
		"accepted", len(resp.Accepted),
		"rejected", len(resp.Rejected),
		"failed", len(resp.Failed),
	)

	status := http.StatusOK
	if len(resp.Accepted) == 0 && len(resp.Rejected) == 0 {
		status = http.StatusBadRequest
	}
	middleware.JSONResponse(w, status, resp)
}
