// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "github.com/google/uuid"

// NewAdminToken creates the opaque bearer secret handed to a room's creator.
// It is generated once per room and is not derivable from anything else.
func NewAdminToken() string {
	return uuid.NewString()
}

// NewParticipantToken creates the opaque bearer secret that identifies a
// participant within a single room. Tokens are never reused, even after the
// participant leaves or is purged.
func NewParticipantToken() string {
	return uuid.NewString()
}
