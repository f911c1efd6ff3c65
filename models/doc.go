// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and event types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRoomRequest: name, fields
  - JoinRoomRequest: name, fields (map of field name to value)
  - DecideJoinRequestsRequest: accept, reject (participant token lists)
  - QuestionRequest: prompt, options, style
  - SetQuestionStateRequest: state
  - VoteRequest: selection (plurality) or selection_order (preferential)

# Response Types

Types for JSON responses:

  - CreateRoomResponse: name, code, fields, admin_token
  - RoomInfoResponse: name, code, fields
  - JoinRoomResponse: participant_token
  - JoinRequestsListResponse: last_updated, requests
  - DecideJoinRequestsResponse: accepted, rejected, failed
  - ResultResponse: type, winner, winners
  - VoteCountResponse: count
  - ErrorResponse: error, message

# WebSocket Events

QuestionEvent is the envelope pushed over live connections:

	{"type": "questionUpdated", "timestamp": ..., "question": {...}}
	{"type": "questionDeleted", "timestamp": ...}

The type strings are the EventQuestionUpdated and EventQuestionDeleted
constants.
*/
package models
