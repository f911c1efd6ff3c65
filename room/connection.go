// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package room

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/mchan/voteroom/question"
)

// ParticipantConnection is the capability the transport layer supplies for
// each live participant socket. The room pushes question changes through it
// and never assumes a particular wire format.
type ParticipantConnection interface {
	SendQuestionUpdated(question.Description) error
	SendQuestionDeleted() error
	RemoveConnection()
}

// event is one entry in a room's ordered broadcast stream.
type event struct {
	deleted  bool
	question question.Description
}

// ConnectionManager fans question events out to a room's live connections.
// Events are delivered strictly in enqueue order, one event fully fanned out
// before the next begins; delivery to distinct connections within an event
// runs in parallel.
type ConnectionManager struct {
	log    *slog.Logger
	events chan event
	done   chan struct{}

	mu    sync.Mutex
	conns map[string]ParticipantConnection
}

func newConnectionManager(log *slog.Logger) *ConnectionManager {
	return &ConnectionManager{
		log:    log,
		events: make(chan event, 16),
		done:   make(chan struct{}),
		conns:  make(map[string]ParticipantConnection),
	}
}

// Register adds a connection for the given participant token.
func (cm *ConnectionManager) Register(token string, conn ParticipantConnection) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if _, ok := cm.conns[token]; ok {
		return ErrParticipantAlreadyConnected
	}
	cm.conns[token] = conn
	return nil
}

// Unregister drops the connection for the given token, if any. The
// connection itself is not closed; that is the transport layer's job.
func (cm *ConnectionManager) Unregister(token string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.conns, token)
}

func (cm *ConnectionManager) enqueue(ev event) {
	select {
	case cm.events <- ev:
	case <-cm.done:
		// broadcast loop has exited; the event is dropped
	}
}

// Run consumes the event stream until ctx is cancelled. It does not close
// registered connections on exit.
func (cm *ConnectionManager) Run(ctx context.Context) {
	defer close(cm.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-cm.events:
			cm.broadcast(ev)
		}
	}
}

func (cm *ConnectionManager) broadcast(ev event) {
	cm.mu.Lock()
	conns := make(map[string]ParticipantConnection, len(cm.conns))
	maps.Copy(conns, cm.conns)
	cm.mu.Unlock()

	var wg sync.WaitGroup
	for token, conn := range conns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if ev.deleted {
				err = conn.SendQuestionDeleted()
			} else {
				err = conn.SendQuestionUpdated(ev.question)
			}
			if err != nil {
				cm.log.Warn("event delivery failed",
					"participant", token,
					"error", err)
			}
		}()
	}
	wg.Wait()
}
