// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roomcode generates the short numeric codes participants type to find
a room.

# Codes

Codes are 6-digit decimal strings with leading zeros preserved, so "004217"
is a valid code. The default generator draws them uniformly at random:

	g := roomcode.DefaultGenerator{}
	code := g.Next()

# Collision Handling

Generate retries until it finds a code the caller reports as unused, bounded
by an attempt budget:

	code, err := roomcode.Generate(g, 100, func(c string) bool {
		return rooms.Exists(c)
	})

If every attempt collides it returns ErrGenerationExhausted, which the HTTP
layer maps to a server error rather than looping forever.
*/
package roomcode
