// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/danielhkuo/ranked-pick/election"
	"github.com/danielhkuo/ranked-pick/models"
)

// pollOption pairs an option id with its label. Slices of pollOption are
// always ordered by ordinal, so the slice index is the candidate id.
type pollOption struct {
	ID    string
	Label string
}

// ComputeIRVResult loads a poll's options and ranked ballots from the
// database and runs the instant-runoff algorithm over them. Options are
// identified to the election by id, in ordinal order, so elimination
// tie-breaks follow option insertion order.
//
// Rankings were permutation-checked at submission time; a malformed stored
// ranking therefore means corrupted data and fails the computation rather
// than being skipped.
func ComputeIRVResult(db *sql.DB, pollID string) (*models.IRVResult, error) {
	options, err := getPollOptions(db, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}

	ballotIDs, rankings, err := getBallotRankings(db, pollID, len(options))
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot rankings: %w", err)
	}

	e := election.New(len(options))
	for _, opt := range options {
		if err := e.AddCandidate(opt.ID); err != nil {
			return nil, fmt.Errorf("failed to register option %s: %w", opt.ID, err)
		}
	}
	for i, ranks := range rankings {
		if err := e.AddBallot(ranks); err != nil {
			return nil, fmt.Errorf("stored ballot %s is malformed: %w", ballotIDs[i], err)
		}
	}

	winners, err := e.SelectWinner()
	if err != nil {
		return nil, fmt.Errorf("instant-runoff failed: %w", err)
	}

	labels := make(map[string]string, len(options))
	for _, opt := range options {
		labels[opt.ID] = opt.Label
	}

	result := &models.IRVResult{
		Winners:    make([]models.WinnerOption, 0, len(winners)),
		Rounds:     make([]models.TallyRound, 0, len(e.Rounds())),
		InputsHash: computeInputsHash(ballotIDs),
	}
	for _, id := range winners {
		result.Winners = append(result.Winners, models.WinnerOption{
			OptionID: id,
			Label:    labels[id],
		})
	}
	for _, round := range e.Rounds() {
		tr := models.TallyRound{
			Eliminated: options[round.Eliminated].ID,
			Tallies:    make(map[string]int, len(options)),
		}
		for i, votes := range round.Tallies {
			tr.Tallies[options[i].ID] = votes
		}
		result.Rounds = append(result.Rounds, tr)
	}

	return result, nil
}

// getPollOptions retrieves a poll's options in ordinal order.
func getPollOptions(db *sql.DB, pollID string) ([]pollOption, error) {
	rows, err := db.Query(`
		SELECT id, label FROM option
		WHERE poll_id = $1
		ORDER BY ordinal
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []pollOption
	for rows.Next() {
		var opt pollOption
		if err := rows.Scan(&opt.ID, &opt.Label); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}

// getBallotRankings retrieves every ballot's ranking as an ordinal-indexed
// rank array. Returned ballot ids and ranking slices are parallel, ordered by
// ballot id for determinism.
func getBallotRankings(db *sql.DB, pollID string, numOptions int) ([]string, [][]int, error) {
	rows, err := db.Query(`
		SELECT r.ballot_id, o.ordinal, r.rank
		FROM ranking r
		JOIN ballot b ON r.ballot_id = b.id
		JOIN option o ON r.option_id = o.id
		WHERE b.poll_id = $1
		ORDER BY r.ballot_id, o.ordinal
	`, pollID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var (
		ballotIDs []string
		rankings  [][]int
	)
	for rows.Next() {
		var (
			ballotID      string
			ordinal, rank int
		)
		if err := rows.Scan(&ballotID, &ordinal, &rank); err != nil {
			return nil, nil, err
		}

		if len(ballotIDs) == 0 || ballotIDs[len(ballotIDs)-1] != ballotID {
			ballotIDs = append(ballotIDs, ballotID)
			rankings = append(rankings, make([]int, numOptions))
		}
		if ordinal < 0 || ordinal >= numOptions {
			return nil, nil, fmt.Errorf("ballot %s ranks unknown ordinal %d", ballotID, ordinal)
		}
		rankings[len(rankings)-1][ordinal] = rank
	}

	return ballotIDs, rankings, rows.Err()
}

// computeInputsHash hashes the ballot ids that went into a result so a sealed
// snapshot can be checked against the ballots it was computed from.
func computeInputsHash(ballotIDs []string) string {
	if len(ballotIDs) == 0 {
		return "no-ballots"
	}

	h := sha256.New()
	for _, id := range ballotIDs {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
