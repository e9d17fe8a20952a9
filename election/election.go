// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"sort"
)

var (
	// ErrInvalidBallot rejects a ranking that is not a permutation of 1..N.
	// All failure modes (wrong length, duplicates, gaps, out-of-range values)
	// report the same error; rejected ballots never mutate election state.
	ErrInvalidBallot = errors.New("invalid ballot")

	// ErrCandidateOverflow means more candidates were added than the election
	// was sized for. This is a setup bug, not a voter error.
	ErrCandidateOverflow = errors.New("too many candidates")

	// ErrRosterIncomplete means a ballot arrived before every declared
	// candidate was registered.
	ErrRosterIncomplete = errors.New("candidate roster incomplete")

	// ErrAlreadyDecided means SelectWinner was called a second time. A run
	// consumes the election's elimination state, so results are single-shot.
	ErrAlreadyDecided = errors.New("election already decided")

	// ErrNoCandidates means SelectWinner was called on an empty election.
	ErrNoCandidates = errors.New("election has no candidates")
)

// Round records one elimination round: which candidate was knocked out and
// the tallies after its ballots were redistributed. Tallies are indexed by
// candidate id; eliminated candidates hold zero.
type Round struct {
	Eliminated int   `json:"eliminated"`
	Tallies    []int `json:"tallies"`
}

// Election holds the candidates running, routes incoming ballots to their
// first choice, and runs the instant-runoff algorithm. Candidate ids are
// assigned in insertion order starting at 0; the id doubles as tie-break
// order wherever vote counts are equal.
//
// An Election is not safe for concurrent use. The algorithm is sequential by
// design: each elimination depends on the previous round's redistribution.
type Election struct {
	capacity   int
	candidates []*Candidate
	rounds     []Round
	decided    bool
}

// New creates an election sized for exactly numCandidates candidates.
func New(numCandidates int) *Election {
	return &Election{
		capacity:   numCandidates,
		candidates: make([]*Candidate, 0, numCandidates),
	}
}

// AddCandidate registers the next candidate. The candidate's id is its
// insertion position. Adding more candidates than the election was sized for
// returns ErrCandidateOverflow.
func (e *Election) AddCandidate(name string) error {
	if len(e.candidates) >= e.capacity {
		return ErrCandidateOverflow
	}
	e.candidates = append(e.candidates, newCandidate(name))
	return nil
}

// Candidates returns the registered candidates in id order.
func (e *Election) Candidates() []*Candidate {
	return e.candidates
}

// NumBallots returns the number of ballots cast so far. Ballots are only ever
// moved between candidates, never dropped, so this holds throughout a run.
func (e *Election) NumBallots() int {
	total := 0
	for _, c := range e.candidates {
		total += c.Votes()
	}
	return total
}

// ValidateRanking checks that ranks is a permutation of 1..n. Exported so
// ballot submission can reject a bad ranking without building an election.
func ValidateRanking(ranks []int, n int) error {
	if len(ranks) != n {
		return ErrInvalidBallot
	}
	sorted := make([]int, len(ranks))
	copy(sorted, ranks)
	sort.Ints(sorted)
	for i, rank := range sorted {
		if rank != i+1 {
			return ErrInvalidBallot
		}
	}
	return nil
}

// AddBallot validates a ranking and routes the resulting ballot to the
// candidate it ranks first.
func (e *Election) AddBallot(ranks []int) error {
	if len(e.candidates) != e.capacity {
		return ErrRosterIncomplete
	}
	if err := ValidateRanking(ranks, e.capacity); err != nil {
		return err
	}

	b := newBallot(ranks)
	top, err := b.TopCandidate()
	if err != nil {
		return err
	}
	e.candidates[top].addBallot(b)
	return nil
}

// SelectWinner runs the instant-runoff algorithm and returns the winner's
// name, or the names of all remaining candidates if they tie. A tied result
// lists candidates in insertion order.
//
// The run consumes the election's elimination state: SelectWinner can only be
// called once, and ballots must not be added afterwards.
func (e *Election) SelectWinner() ([]string, error) {
	if e.decided {
		return nil, ErrAlreadyDecided
	}
	if len(e.candidates) == 0 {
		return nil, ErrNoCandidates
	}
	e.decided = true

	tallies := make([]int, len(e.candidates))
	for i, c := range e.candidates {
		tallies[i] = c.Votes()
	}

	// Total ballots cast never changes over a run; compute once.
	numBallots := 0
	for _, v := range tallies {
		numBallots += v
	}

	for {
		// A strict majority ends the run immediately.
		for i := range e.candidates {
			if tallies[i] > numBallots/2 {
				return []string{e.candidates[i].Name()}, nil
			}
		}

		// A sole survivor wins outright.
		if e.remaining() == 1 {
			return []string{e.candidates[e.maxTallyIndex(tallies)].Name()}, nil
		}

		if e.isTie(tallies) {
			var winners []string
			for _, c := range e.candidates {
				if !c.IsEliminated() {
					winners = append(winners, c.Name())
				}
			}
			return winners, nil
		}

		// Knock out the lowest tally and move its ballots to their next
		// choices.
		lowest := e.minTallyIndex(tallies)
		held, err := e.candidates[lowest].eliminate()
		if err != nil {
			return nil, err
		}
		for _, b := range held {
			b.EliminateCandidate(lowest)

			// The ballot may still rank candidates eliminated in earlier
			// rounds while some other candidate held it; skip those too so
			// votes never transfer to a knocked-out candidate.
			next, err := b.TopCandidate()
			for err == nil && e.candidates[next].IsEliminated() {
				b.EliminateCandidate(next)
				next, err = b.TopCandidate()
			}
			if err != nil {
				return nil, err
			}

			e.candidates[next].addBallot(b)
			tallies[next]++
		}
		tallies[lowest] = 0

		round := Round{Eliminated: lowest, Tallies: make([]int, len(tallies))}
		copy(round.Tallies, tallies)
		e.rounds = append(e.rounds, round)
	}
}

// Rounds returns the elimination history recorded by SelectWinner, oldest
// round first. Empty until SelectWinner has run (or when the first majority
// check ends the election before any elimination).
func (e *Election) Rounds() []Round {
	return e.rounds
}

// minTallyIndex returns the index of the lowest tally among non-eliminated
// candidates, lowest index winning ties. The scan seeds from the first
// surviving candidate, so a stale tally on an eliminated candidate can never
// skew the result.
func (e *Election) minTallyIndex(tallies []int) int {
	min := -1
	for i, c := range e.candidates {
		if c.IsEliminated() {
			continue
		}
		if min == -1 || tallies[i] < tallies[min] {
			min = i
		}
	}
	return min
}

// maxTallyIndex is the mirror of minTallyIndex.
func (e *Election) maxTallyIndex(tallies []int) int {
	max := -1
	for i, c := range e.candidates {
		if c.IsEliminated() {
			continue
		}
		if max == -1 || tallies[i] > tallies[max] {
			max = i
		}
	}
	return max
}

// isTie reports whether every surviving candidate holds the same tally.
func (e *Election) isTie(tallies []int) bool {
	max := e.maxTallyIndex(tallies)
	if max == -1 {
		return false
	}
	for i, c := range e.candidates {
		if !c.IsEliminated() && tallies[i] != tallies[max] {
			return false
		}
	}
	return true
}

// remaining counts candidates still in contention.
func (e *Election) remaining() int {
	n := 0
	for _, c := range e.candidates {
		if !c.IsEliminated() {
			n++
		}
	}
	return n
}
