// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package room implements the live polling engine: the room registry, the
join-request admission handshake, participant lifecycle, question operations,
and event fan-out to connected participants.

# Manager

Manager owns the code→room registry:

	m := room.NewManager(cfg, logger)
	m.Start(ctx)
	r, err := m.CreateRoom("Quiz Night", []string{"email"})

CreateRoom draws a fresh 6-digit code, mints the admin token, and starts the
room's broadcast loop under the Start context. Cancelling that context stops
new room creation, resolves every pending join request with JoinRoomClosing,
and winds the broadcast loops down.

# Join Handshake

RequestJoin validates the submitted fields against the room's required set,
registers a pending request, and suspends the caller:

	res, err := r.RequestJoin(ctx, "alice", fields)

The request resolves exactly once, by whichever happens first: an admin
decision through HandleJoinRequest, the join timeout, or shutdown. An
accepted participant receives a token and the inactivity window to open a
connection via AddParticipantConnection; tokens that never connect are
purged and become permanently invalid.

# Questions and Broadcasts

UpdateQuestion, RemoveQuestion, and SetQuestionState mutate the room's
single current question and enqueue an event for every live connection.
Events for one room are delivered in order, one event fully fanned out
before the next; a slow or failing connection never blocks the others.

# Concurrency

Each room's state sits behind its own mutex, so operations on different
rooms never contend. Timers (join timeout, inactivity) race their admin
counterparts through a single resolution path that whichever side reaches
first wins.
*/
package room
