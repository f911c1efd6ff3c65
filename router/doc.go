// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voteroom API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(manager)

# Endpoints

Health:

	GET /health

Room management:

	POST /rooms        - Create room (returns admin token)
	GET  /rooms/{code} - Room info

Join handshake:

	POST /rooms/{code}/join          - Request to join (long-poll)
	GET  /rooms/{code}/join-requests - List pending requests (admin)
	POST /rooms/{code}/join-requests - Accept/reject requests (admin)

Question lifecycle (admin, requires Room-Admin-Token):

	GET    /rooms/{code}/question                       - Current question
	POST   /rooms/{code}/question                       - Post/replace question
	DELETE /rooms/{code}/question                       - Delete question
	POST   /rooms/{code}/question/{questionID}/state    - Set state

Results and voting:

	GET  /rooms/{code}/question/{questionID}/result - Tally (public)
	GET  /rooms/{code}/question/{questionID}/votes  - Vote count (admin)
	POST /rooms/{code}/question/{questionID}/vote   - Submit ballot

Live events:

	GET /rooms/{code}/connect - WebSocket for question events

# Handler Initialization

The router creates handler instances with dependency injection:

	roomHandler := handlers.NewRoomHandler(manager)
	joinHandler := handlers.NewJoinHandler(manager)
	questionHandler := handlers.NewQuestionHandler(manager)
	votingHandler := handlers.NewVotingHandler(manager)
	connectHandler := handlers.NewConnectHandler(manager)

All handlers receive the room manager.
*/
package router
