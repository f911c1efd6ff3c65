// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package question implements the poll state machine and vote tallying.

# Lifecycle

A question is created open and moves between states via SetState:

	open ⇄ closed
	open | closed → finalized

Finalized is terminal; any transition out of it fails with
IllegalStateChangeError. Votes are accepted only while open.

# Voting Styles

Plurality questions take a single selection, which must be one of the
declared options. Preferential questions take a full ranking, which must be
an exact permutation of the options. A ballot in the wrong style fails with
VoteStyleMismatchError; a malformed ballot fails with ErrInvalidVote. Each
participant token holds at most one ballot; voting again replaces it.

# Tallying

Result computes the outcome lazily and caches it until the next vote:

	r := q.Result()
	switch r.Kind {
	case question.ResultNoVotes:
	case question.ResultSingleWinner: // r.Winner
	case question.ResultTie:          // r.Winners
	}

Plurality takes the option(s) with the highest vote count. Preferential runs
round-based elimination: each round counts how many ballots place each
surviving option within their first k surviving preferences (k starts at 1).
A strict majority of first preferences wins outright, but only while k is 1.
Otherwise all options with the lowest count are eliminated together and k
resets; if every option ties, k widens by one rank, and when k reaches the
size of the surviving field the survivors are reported as a tie.

# Concurrency

Question is not safe for concurrent use. The owning room serializes all
access behind its own lock.
*/
package question
