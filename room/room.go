// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package room

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/mchan/voteroom/auth"
	"github.com/mchan/voteroom/question"
)

// JoinStatus is the outcome delivered to a waiting join caller.
type JoinStatus string

const (
	JoinAccepted    JoinStatus = "accepted"
	JoinRejected    JoinStatus = "rejected"
	JoinTimeout     JoinStatus = "timeout"
	JoinRoomClosing JoinStatus = "roomClosing"
)

// JoinResult resolves a join request. Token is set only for JoinAccepted.
type JoinResult struct {
	Status JoinStatus
	Token  string
}

// joinRequest is one pending join attempt. The result channel is buffered so
// the resolver never blocks on a caller that has already given up.
type joinRequest struct {
	name     string
	fields   map[string]string
	received time.Time
	result   chan JoinResult
	timer    *time.Timer
}

// JoinRequestInfo is the admin-facing view of a pending join request.
type JoinRequestInfo struct {
	Token      string            `json:"participant_token"`
	Name       string            `json:"name"`
	Fields     map[string]string `json:"fields"`
	ReceivedAt time.Time         `json:"timestamp"`
}

// Room is one live poll session. All mutable state is guarded by mu;
// operations on different rooms never contend.
type Room struct {
	name           string
	code           string
	adminToken     string
	requiredFields []string

	joinTimeout       time.Duration
	inactivityTimeout time.Duration

	log         *slog.Logger
	connections *ConnectionManager

	mu       sync.Mutex
	pending  map[string]*joinRequest
	inactive map[string]*time.Timer
	active   map[string]ParticipantConnection
	question *question.Question
}

func newRoom(name, code, adminToken string, requiredFields []string, joinTimeout, inactivityTimeout time.Duration, log *slog.Logger) *Room {
	log = log.With("room", code)
	return &Room{
		name:              name,
		code:              code,
		adminToken:        adminToken,
		requiredFields:    slices.Clone(requiredFields),
		joinTimeout:       joinTimeout,
		inactivityTimeout: inactivityTimeout,
		log:               log,
		connections:       newConnectionManager(log),
		pending:           make(map[string]*joinRequest),
		inactive:          make(map[string]*time.Timer),
		active:            make(map[string]ParticipantConnection),
	}
}

func (r *Room) Name() string { return r.name }
func (r *Room) Code() string { return r.code }

// AdminToken returns the room's admin secret. It is handed out once, in the
// create-room response.
func (r *Room) AdminToken() string { return r.adminToken }

func (r *Room) RequiredFields() []string { return slices.Clone(r.requiredFields) }

// VerifyAdminToken checks a presented token against the room's admin secret.
func (r *Room) VerifyAdminToken(token string) bool {
	return token == r.adminToken
}

// validateFields checks that the submitted field set exactly matches the
// required set.
func validateFields(fields map[string]string, required []string) error {
	var missing, extra []string
	for _, f := range required {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	for f := range fields {
		if !slices.Contains(required, f) {
			extra = append(extra, f)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return &InvalidFieldsError{Missing: missing, Extra: extra}
}

// RequestJoin submits a join attempt and blocks until an admin decides, the
// join timeout fires, or ctx is cancelled. On acceptance the result carries
// the caller's participant token; the participant then has the inactivity
// window to open a connection before the token is purged.
func (r *Room) RequestJoin(ctx context.Context, name string, fields map[string]string) (JoinResult, error) {
	if err := validateFields(fields, r.requiredFields); err != nil {
		return JoinResult{}, err
	}

	token := auth.NewParticipantToken()
	req := &joinRequest{
		name:     name,
		fields:   fields,
		received: time.Now(),
		result:   make(chan JoinResult, 1),
	}

	r.mu.Lock()
	r.pending[token] = req
	req.timer = time.AfterFunc(r.joinTimeout, func() {
		r.resolveJoin(token, JoinResult{Status: JoinTimeout})
	})
	r.mu.Unlock()

	r.log.Info("join requested", "name", name)

	select {
	case res := <-req.result:
		return res, nil
	case <-ctx.Done():
		// caller gave up; withdraw the request if it is still pending
		r.mu.Lock()
		if cur, ok := r.pending[token]; ok && cur == req {
			delete(r.pending, token)
			req.timer.Stop()
		}
		r.mu.Unlock()
		return JoinResult{}, ctx.Err()
	}
}

// resolveJoin settles a pending request exactly once. The admin path and the
// timeout path both funnel through here; whichever removes the request from
// the pending map first wins, and the loser is a no-op.
func (r *Room) resolveJoin(token string, res JoinResult) bool {
	r.mu.Lock()
	req, ok := r.pending[token]
	if !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.pending, token)
	req.timer.Stop()
	if res.Status == JoinAccepted {
		res.Token = token
		r.inactive[token] = time.AfterFunc(r.inactivityTimeout, func() {
			r.purgeInactive(token)
		})
	}
	r.mu.Unlock()

	req.result <- res
	return true
}

// HandleJoinRequest applies an admin decision to a pending request. It
// returns false if no request exists for the token (already resolved, timed
// out, or never made).
func (r *Room) HandleJoinRequest(accept bool, token string) bool {
	status := JoinRejected
	if accept {
		status = JoinAccepted
	}
	resolved := r.resolveJoin(token, JoinResult{Status: status})
	if resolved {
		r.log.Info("join request decided", "accepted", accept)
	}
	return resolved
}

// purgeInactive drops an accepted participant that never connected. The
// token becomes permanently invalid.
func (r *Room) purgeInactive(token string) {
	r.mu.Lock()
	_, ok := r.inactive[token]
	if ok {
		delete(r.inactive, token)
	}
	r.mu.Unlock()
	if ok {
		r.log.Info("inactive participant purged")
	}
}

// PendingJoinRequests lists pending requests oldest first.
func (r *Room) PendingJoinRequests() []JoinRequestInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]JoinRequestInfo, 0, len(r.pending))
	for token, req := range r.pending {
		out = append(out, JoinRequestInfo{
			Token:      token,
			Name:       req.name,
			Fields:     req.fields,
			ReceivedAt: req.received,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })
	return out
}

// HasParticipant reports whether the token belongs to an accepted
// participant, connected or not.
func (r *Room) HasParticipant(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasParticipantLocked(token)
}

func (r *Room) hasParticipantLocked(token string) bool {
	if _, ok := r.inactive[token]; ok {
		return true
	}
	_, ok := r.active[token]
	return ok
}

// AddParticipantConnection promotes an accepted participant to active,
// cancelling its inactivity timer and registering the connection for
// broadcasts.
func (r *Room) AddParticipantConnection(conn ParticipantConnection, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[token]; ok {
		return ErrAlreadyConnected
	}
	timer, ok := r.inactive[token]
	if !ok {
		return ErrInvalidParticipantToken
	}
	if err := r.connections.Register(token, conn); err != nil {
		return err
	}
	timer.Stop()
	delete(r.inactive, token)
	r.active[token] = conn

	r.log.Info("participant connected")
	return nil
}

// DisconnectParticipant returns an active participant to the inactive set
// with a fresh inactivity window, so a dropped connection can be reopened
// before the token is purged.
func (r *Room) DisconnectParticipant(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[token]; !ok {
		return
	}
	r.connections.Unregister(token)
	delete(r.active, token)
	r.inactive[token] = time.AfterFunc(r.inactivityTimeout, func() {
		r.purgeInactive(token)
	})

	r.log.Info("participant disconnected")
}

// closeJoins resolves every pending join request with JoinRoomClosing. Used
// during shutdown.
func (r *Room) closeJoins() {
	r.mu.Lock()
	reqs := r.pending
	r.pending = make(map[string]*joinRequest)
	for _, req := range reqs {
		req.timer.Stop()
	}
	r.mu.Unlock()

	for _, req := range reqs {
		req.result <- JoinResult{Status: JoinRoomClosing}
	}
}
