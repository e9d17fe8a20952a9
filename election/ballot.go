// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// ErrNoChoicesLeft is returned by TopCandidate when every candidate on the
// ballot has been eliminated. A well-formed run never hits this: the algorithm
// stops while at least one candidate remains.
var ErrNoChoicesLeft = errors.New("no candidates left on ballot")

// Ballot is one voter's complete ranking of all candidates. The ranking is
// fixed at creation; what changes over the course of a run is which candidates
// are still eligible to be the ballot's top choice.
type Ballot struct {
	// ranks[i] is the rank the voter gave candidate i (1 = top choice).
	// Always a permutation of 1..N, validated by Election before construction.
	ranks      []int
	eliminated []bool
}

// newBallot wraps a ranking the caller has already validated with
// ValidateRanking. Ballot itself does no validation.
func newBallot(ranks []int) *Ballot {
	r := make([]int, len(ranks))
	copy(r, ranks)
	return &Ballot{
		ranks:      r,
		eliminated: make([]bool, len(r)),
	}
}

// TopCandidate returns the id of the highest-ranked candidate not yet
// eliminated on this ballot. Because the ranking is a true permutation, the
// minimum rank among surviving candidates is always unique.
func (b *Ballot) TopCandidate() (int, error) {
	top := -1
	for i, rank := range b.ranks {
		if b.eliminated[i] {
			continue
		}
		if top == -1 || rank < b.ranks[top] {
			top = i
		}
	}
	if top == -1 {
		return 0, ErrNoChoicesLeft
	}
	return top, nil
}

// EliminateCandidate marks a candidate as no longer eligible to be this
// ballot's top choice. Repeated calls for the same id are no-ops; ids outside
// the ballot are ignored.
func (b *Ballot) EliminateCandidate(id int) {
	if id >= 0 && id < len(b.eliminated) {
		b.eliminated[id] = true
	}
}
