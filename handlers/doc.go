// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voteroom API.

# Handler Types

Each handler is a struct holding the room manager:

  - RoomHandler: room creation and lookup
  - JoinHandler: the join handshake (request, list, decide)
  - QuestionHandler: question lifecycle, results, vote counts
  - VotingHandler: ballot submission
  - ConnectHandler: websocket upgrade for live question events

Handlers are created via constructor functions that accept *room.Manager:

	roomHandler := handlers.NewRoomHandler(manager)

# Room Flow

	POST /rooms        → CreateRoom (returns code and admin_token)
	GET  /rooms/{code} → RoomInfo

Admin operations require the Room-Admin-Token header.

# Join Handshake

POST /rooms/{code}/join long-polls: the request stays open until the admin
decides through POST /rooms/{code}/join-requests, the join window times
out, or the server shuts down. An accepted caller receives its
participant_token and must open the websocket (or vote) before the
inactivity window purges the token.

# Voting

	POST /rooms/{code}/question/{questionID}/vote

The ballot shape selects the style: {"selection": ...} for plurality,
{"selection_order": [...]} for preferential. Voter operations require the
Participant-Token header.

# Live Events

GET /rooms/{code}/connect upgrades to a websocket and registers the
participant for question events. The token is read from the
Participant-Token header, or the token query parameter for browser
clients. Events are QuestionEvent envelopes; see the models package.
*/
package handlers
