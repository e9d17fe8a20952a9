// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "testing"

func TestCandidateVotes(t *testing.T) {
	c := newCandidate("Pizza")

	if c.Name() != "Pizza" {
		t.Errorf("Name() = %q, want %q", c.Name(), "Pizza")
	}
	if c.Votes() != 0 {
		t.Errorf("Expected 0 votes on a new candidate, got %d", c.Votes())
	}
	if c.IsEliminated() {
		t.Error("New candidate should not be eliminated")
	}

	c.addBallot(newBallot([]int{1, 2}))
	c.addBallot(newBallot([]int{1, 2}))

	if c.Votes() != 2 {
		t.Errorf("Expected 2 votes, got %d", c.Votes())
	}
}

func TestCandidateEliminateReleasesBallots(t *testing.T) {
	c := newCandidate("Sushi")
	c.addBallot(newBallot([]int{1, 2}))
	c.addBallot(newBallot([]int{1, 2}))
	c.addBallot(newBallot([]int{1, 2}))

	held, err := c.eliminate()
	if err != nil {
		t.Fatalf("eliminate() error = %v", err)
	}

	if len(held) != 3 {
		t.Errorf("Expected 3 released ballots, got %d", len(held))
	}
	if !c.IsEliminated() {
		t.Error("Candidate should be eliminated")
	}
	if c.Votes() != 0 {
		t.Errorf("Eliminated candidate should hold 0 ballots, got %d", c.Votes())
	}
}

func TestCandidateEliminateTwice(t *testing.T) {
	c := newCandidate("Tacos")

	if _, err := c.eliminate(); err != nil {
		t.Fatalf("First eliminate() error = %v", err)
	}
	if _, err := c.eliminate(); err != ErrAlreadyEliminated {
		t.Errorf("Expected ErrAlreadyEliminated, got %v", err)
	}
}
