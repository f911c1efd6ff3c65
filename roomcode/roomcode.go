// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roomcode

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrGenerationExhausted is returned when no unused code could be found
// within the attempt budget.
var ErrGenerationExhausted = errors.New("room code generation exhausted")

// Generator produces candidate room codes. Implementations do not need to
// guarantee uniqueness; Generate handles collision retries.
type Generator interface {
	Next() string
}

// DefaultGenerator produces uniformly random 6-digit decimal codes, padded
// with leading zeros.
type DefaultGenerator struct{}

func (DefaultGenerator) Next() string {
	return fmt.Sprintf("%06d", rand.IntN(1_000_000))
}

// Generate draws codes from g until taken reports one as unused, trying at
// most maxAttempts times. It returns ErrGenerationExhausted if every attempt
// collided.
func Generate(g Generator, maxAttempts int, taken func(string) bool) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code := g.Next()
		if !taken(code) {
			return code, nil
		}
	}
	return "", ErrGenerationExhausted
}
