// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the voteroom API server.

Voteroom is a live polling service: an administrator creates a room,
participants request to join and wait for approval, and the admin posts
questions that participants vote on with plurality or preferential
(instant-runoff) rules. Connected participants receive question changes in
real time over a websocket.

# Starting the Server

The server is configured through environment variables or CLI flags:

	PORT=3318 go run main.go

Or with flags:

	go run main.go -p 3318 -join-timeout 120 -inactivity-timeout 45

A .env file in the working directory is loaded if present.

# Configuration

Optional settings:

  - PORT (-p): server port (default: 3318)
  - JOIN_TIMEOUT_SECONDS (-join-timeout): how long a join request waits
    for an admin decision (default: 120)
  - INACTIVITY_TIMEOUT_SECONDS (-inactivity-timeout): how long an accepted
    participant has to connect before its token is purged (default: 45)
  - CODE_MAX_ATTEMPTS (-code-attempts): room code collision retry budget
    (default: 100)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - room: the live engine (rooms, join handshake, broadcasts)
  - question: poll state machine and vote tallying
  - roomcode: 6-digit room code generation
  - handlers: HTTP and websocket request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response/event types
  - auth: token generation
  - cliparse: configuration parsing

All state is held in memory for the lifetime of the process; there is no
database.

See package documentation for each component.
*/
package main
