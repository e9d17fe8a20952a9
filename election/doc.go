// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements ranked-choice (instant-runoff) voting.

The package is pure computation: no I/O, no persistence, no goroutines.
Adapters (HTTP handlers, the database layer) feed it a candidate roster and
ranked ballots and receive the winner list back.

# Model

An Election is sized for a fixed number of candidates up front. Candidates are
identified by their insertion position (0..N-1); that position is also the
tie-break order wherever the algorithm has to pick between equal vote counts.

	e := election.New(3)
	e.AddCandidate("Pizza")
	e.AddCandidate("Sushi")
	e.AddCandidate("Tacos")

A ballot is a full ranking: ranks[i] is the rank the voter gave candidate i,
with 1 being the top choice. Every ballot must be a permutation of 1..N:

	err := e.AddBallot([]int{1, 3, 2}) // Pizza first, Tacos second, Sushi third

Anything else (wrong length, duplicate ranks, out-of-range values) is
rejected with ErrInvalidBallot and leaves the election untouched.

# Algorithm

SelectWinner tallies first-choice votes and then loops:

 1. Any candidate holding a strict majority (> half of all ballots) wins
    outright.
 2. If only one candidate remains, it wins.
 3. If every remaining candidate holds the same number of votes, they tie and
    are all returned.
 4. Otherwise the remaining candidate with the fewest votes is eliminated
    (lowest id breaks ties) and each of its ballots moves to that ballot's
    next non-eliminated choice.

	winners, err := e.SelectWinner()

SelectWinner consumes the election's elimination state and can only be called
once; a second call returns ErrAlreadyDecided. Rounds reports the elimination
history of a finished run for callers that want to display it.
*/
package election
