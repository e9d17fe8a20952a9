// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ranked Pick API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: Poll lifecycle (create, publish, close)
  - VotingHandler: Username claims and ranked ballot submission
  - ResultsHandler: Poll info and results retrieval
  - DeviceHandler: Device registration and poll history

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Poll Lifecycle

Polls progress through three states: draft → open → closed

	POST /polls           → CreatePoll (returns admin_key)
	POST /polls/{id}/options → AddOption (draft only, assigns ordinal)
	POST /polls/{id}/publish → PublishPoll (generates share_slug)
	POST /polls/{id}/close   → ClosePoll (computes instant-runoff results)

Admin operations require the X-Admin-Key header.

# Voting Flow

Voters interact via the share slug:

	POST /polls/{slug}/claim-username → ClaimUsername (returns voter_token)
	POST /polls/{slug}/ballots        → SubmitBallot (create or update)
	GET /polls/{slug}/my-ballot       → GetMyBallot

Voter operations require the X-Voter-Token header. A ballot is a full
ranking of the poll's options: ranking[i] is the rank given to the option
with ordinal i, and it must be a permutation of 1..N.

# Instant-Runoff Algorithm

Instant-runoff voting is implemented in package election; irv.go adapts
stored ballots to it:

	result, err := ComputeIRVResult(db, pollID)

This eliminates last-place options round by round, redistributing their
ballots, until an option holds a strict majority or the survivors tie.
The result carries the winners, the per-round tallies, and a hash of the
ballot ids it was computed from.

# Device Tracking

Optional device tracking for native apps:

	POST /devices/register → Register
	GET /devices/me        → GetMe
	GET /devices/my-polls  → GetMyPolls

Device operations require the X-Device-UUID header, which must be a
valid UUID.
*/
package handlers
