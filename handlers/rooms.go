// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/models"
	"github.com/mchan/voteroom/room"
	"github.com/mchan/voteroom/roomcode"
)

type RoomHandler struct {
	manager *room.Manager
}

func NewRoomHandler(manager *room.Manager) *RoomHandler {
	return &RoomHandler{manager: manager}
}

// getRoom resolves the {code} path parameter, writing a 404 on a miss.
func getRoom(w http.ResponseWriter, r *http.Request, manager *room.Manager) *room.Room {
	code := r.PathValue("code")
	rm := manager.Room(code)
	if rm == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return nil
	}
	return rm
}

// requireAdmin checks the Room-Admin-Token header, writing a 403 on mismatch.
func requireAdmin(w http.ResponseWriter, r *http.Request, rm *room.Room) bool {
	if !rm.VerifyAdminToken(r.Header.Get(middleware.AdminTokenHeader)) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin token")
		return false
	}
	return true
}

// CreateRoom handles POST /rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	rm, err := h.manager.CreateRoom(req.Name, req.Fields)
	if errors.Is(err, room.ErrNotAcceptingRooms) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Not accepting new rooms")
		return
	}
	if errors.Is(err, roomcode.ErrGenerationExhausted) {
		slog.Error("room code generation exhausted")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create room")
		return
	}
	if err != nil {
		slog.Error("failed to create room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		Name:       rm.Name(),
		Code:       rm.Code(),
		Fields:     rm.RequiredFields(),
		AdminToken: rm.AdminToken(),
	})
}

// RoomInfo handles GET /rooms/{code}
func (h *RoomHandler) RoomInfo(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoomInfoResponse{
		Name:   rm.Name(),
		Code:   rm.Code(),
		Fields: rm.RequiredFields(),
	})
}
