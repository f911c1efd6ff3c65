// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package room

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mchan/voteroom/auth"
	"github.com/mchan/voteroom/roomcode"
)

// Config carries the manager's tunable timeouts and budgets.
type Config struct {
	JoinTimeout       time.Duration
	InactivityTimeout time.Duration
	CodeMaxAttempts   int
}

// Manager owns the registry of live rooms. Rooms live for the process
// lifetime; there is no explicit room destruction.
type Manager struct {
	cfg   Config
	log   *slog.Logger
	codes roomcode.Generator

	ctx context.Context
	wg  sync.WaitGroup

	mu        sync.Mutex
	accepting bool
	rooms     map[string]*Room
}

// NewManager builds a manager using the default room code generator.
func NewManager(cfg Config, log *slog.Logger) *Manager {
	return &Manager{
		cfg:   cfg,
		log:   log,
		codes: roomcode.DefaultGenerator{},
		rooms: make(map[string]*Room),
	}
}

// Start begins accepting rooms. New rooms' broadcast loops run under ctx;
// when ctx is cancelled the manager stops admitting rooms, resolves every
// pending join request with JoinRoomClosing, and lets the per-room loops
// drain and exit.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	m.ctx = ctx
	m.accepting = true
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		<-ctx.Done()

		m.mu.Lock()
		m.accepting = false
		rooms := make([]*Room, 0, len(m.rooms))
		for _, r := range m.rooms {
			rooms = append(rooms, r)
		}
		m.mu.Unlock()

		for _, r := range rooms {
			r.closeJoins()
		}
		m.log.Info("room manager stopped", "rooms", len(rooms))
	}()
}

// Wait blocks until every per-room broadcast loop has exited after
// cancellation.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// CreateRoom registers a new room under a fresh 6-digit code and starts its
// broadcast loop. It returns ErrNotAcceptingRooms once shutdown has begun
// and roomcode.ErrGenerationExhausted if no unused code could be found.
func (m *Manager) CreateRoom(name string, requiredFields []string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.accepting {
		return nil, ErrNotAcceptingRooms
	}

	code, err := roomcode.Generate(m.codes, m.cfg.CodeMaxAttempts, func(c string) bool {
		_, taken := m.rooms[c]
		return taken
	})
	if err != nil {
		return nil, err
	}

	r := newRoom(name, code, auth.NewAdminToken(), requiredFields,
		m.cfg.JoinTimeout, m.cfg.InactivityTimeout, m.log)
	m.rooms[code] = r

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		r.connections.Run(m.ctx)
	}()

	m.log.Info("room created", "room", code, "name", name)
	return r, nil
}

// Room looks up a room by code. It returns nil on a miss; callers map
// absence to their own not-found semantics.
func (m *Manager) Room(code string) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rooms[code]
}
