// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package question

// ResultKind discriminates the tally outcome.
type ResultKind string

const (
	ResultNoVotes      ResultKind = "noVotes"
	ResultSingleWinner ResultKind = "singleWinner"
	ResultTie          ResultKind = "tie"
)

// Result is the tally outcome. Winner is set for ResultSingleWinner;
// Winners for ResultTie. Winners follows the question's option order.
type Result struct {
	Kind    ResultKind
	Winner  string
	Winners []string
}

func (q *Question) tallyPlurality() Result {
	if len(q.pluralityVotes) == 0 {
		return Result{Kind: ResultNoVotes}
	}

	counts := make(map[string]int)
	for _, selection := range q.pluralityVotes {
		counts[selection]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	var winners []string
	for _, opt := range q.options {
		if counts[opt] == max {
			winners = append(winners, opt)
		}
	}

	if len(winners) == 1 {
		return Result{Kind: ResultSingleWinner, Winner: winners[0]}
	}
	return Result{Kind: ResultTie, Winners: winners}
}

// tallyPreferential runs the ranked elimination procedure. Each round counts,
// per option still in the running, how many ballots place it within their
// first k surviving preferences. A strict first-preference majority decides
// the question only while k == 1; after that only eliminations narrow the
// field. A round where every surviving option ties widens k instead of
// eliminating, and once k covers the whole surviving field the tie is final.
func (q *Question) tallyPreferential() Result {
	if len(q.preferentialVotes) == 0 {
		return Result{Kind: ResultNoVotes}
	}

	ballots := make([][]string, 0, len(q.preferentialVotes))
	for _, order := range q.preferentialVotes {
		ballots = append(ballots, order)
	}

	winThreshold := len(ballots)/2 + 1

	remaining := make(map[string]bool, len(q.options))
	for _, opt := range q.options {
		remaining[opt] = true
	}

	k := 1
	for {
		counts := make(map[string]int, len(remaining))
		for opt := range remaining {
			counts[opt] = 0
		}
		for _, ballot := range ballots {
			counted := 0
			for _, opt := range ballot {
				if !remaining[opt] {
					continue
				}
				counts[opt]++
				counted++
				if counted == k {
					break
				}
			}
		}

		if k == 1 {
			for opt, n := range counts {
				if n >= winThreshold {
					return Result{Kind: ResultSingleWinner, Winner: opt}
				}
			}
		}

		min, max := -1, 0
		for _, n := range counts {
			if min < 0 || n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}

		if min < max {
			for opt, n := range counts {
				if n == min {
					delete(remaining, opt)
				}
			}
			k = 1
			continue
		}

		if k == len(remaining) {
			var tied []string
			for _, opt := range q.options {
				if remaining[opt] {
					tied = append(tied, opt)
				}
			}
			return Result{Kind: ResultTie, Winners: tied}
		}
		k++
	}
}
