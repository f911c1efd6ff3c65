// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation for room access control.

# Admin Tokens

Each room has a single admin token minted at creation:

	token := auth.NewAdminToken()

The token is an opaque random string. It is returned to the room's creator
once and is required for every admin operation on the room (approving join
requests, editing the question, changing question state).

# Participant Tokens

Participants receive a token when their join request is accepted:

	token := auth.NewParticipantToken()

The token identifies the participant within a single room for voting and for
opening the live event connection. Tokens are never reused, even after a
participant is purged for inactivity.
*/
package auth
