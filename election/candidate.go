// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// ErrAlreadyEliminated guards against eliminating a candidate twice. A second
// elimination would hand back an empty ballot list and silently corrupt the
// tallies, so it fails fast instead.
var ErrAlreadyEliminated = errors.New("candidate already eliminated")

// Candidate is one contestant. It owns the ballots that currently rank it
// first among the candidates still in contention.
type Candidate struct {
	name       string
	ballots    []*Ballot
	eliminated bool
}

func newCandidate(name string) *Candidate {
	return &Candidate{name: name}
}

// Name returns the candidate's display name.
func (c *Candidate) Name() string { return c.name }

// Votes returns the number of ballots the candidate currently holds.
func (c *Candidate) Votes() int { return len(c.ballots) }

// IsEliminated reports whether the candidate has been knocked out.
func (c *Candidate) IsEliminated() bool { return c.eliminated }

// addBallot hands the candidate a ballot. The election ensures each ballot is
// held by exactly one candidate at a time.
func (c *Candidate) addBallot(b *Ballot) {
	c.ballots = append(c.ballots, b)
}

// eliminate knocks the candidate out and returns its held ballots so the
// election can redistribute them.
func (c *Candidate) eliminate() ([]*Ballot, error) {
	if c.eliminated {
		return nil, ErrAlreadyEliminated
	}
	c.eliminated = true
	held := c.ballots
	c.ballots = nil
	return held, nil
}
