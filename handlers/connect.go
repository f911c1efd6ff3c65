// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/models"
	"github.com/mchan/voteroom/question"
	"github.com/mchan/voteroom/room"
)

type ConnectHandler struct {
	manager  *room.Manager
	upgrader websocket.Upgrader
}

func NewConnectHandler(manager *room.Manager) *ConnectHandler {
	return &ConnectHandler{
		manager: manager,
		upgrader: websocket.Upgrader{
			// origin policy is enforced by the CORS layer for the REST
			// surface; the socket carries its own bearer token
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// wsConnection adapts a websocket to the room's connection capability.
// gorilla allows one concurrent writer, so sends are serialized.
type wsConnection struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConnection) SendQuestionUpdated(d question.Description) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(models.QuestionEvent{
		Type:      models.EventQuestionUpdated,
		Timestamp: time.Now(),
		Question:  &d,
	})
}

func (c *wsConnection) SendQuestionDeleted() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(models.QuestionEvent{
		Type:      models.EventQuestionDeleted,
		Timestamp: time.Now(),
	})
}

func (c *wsConnection) RemoveConnection() {
	c.conn.Close()
}

// Connect handles GET /rooms/{code}/connect
// Upgrades to a websocket and registers the participant for question events.
// The token comes from the Participant-Token header, or the token query
// parameter for browser clients that cannot set headers on a websocket.
func (h *ConnectHandler) Connect(w http.ResponseWriter, r *http.Request) {
	rm := getRoom(w, r, h.manager)
	if rm == nil {
		return
	}

	token := r.Header.Get(middleware.ParticipantTokenHeader)
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if token == "" || !rm.HasParticipant(token) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid participant token")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "room", rm.Code(), "error", err)
		return
	}

	pc := &wsConnection{conn: conn}
	if err := rm.AddParticipantConnection(pc, token); err != nil {
		msg := "connection rejected"
		if errors.Is(err, room.ErrAlreadyConnected) || errors.Is(err, room.ErrParticipantAlreadyConnected) {
			msg = "already connected"
		}
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, msg))
		conn.Close()
		return
	}

	// Drain the read side to observe the close; inbound frames are ignored.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		rm.DisconnectParticipant(token)
		conn.Close()
	}()
}
