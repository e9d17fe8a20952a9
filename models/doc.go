// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, creator_name
  - AddOptionRequest: label
  - ClaimUsernameRequest: username
  - SubmitBallotRequest: ranking ([]int, permutation of 1..N)
  - RegisterDeviceRequest: platform

# Response Types

Types for JSON responses:

  - CreatePollResponse: poll_id, admin_key
  - AddOptionResponse: option_id, ordinal
  - PublishPollResponse: share_slug, share_url
  - ClaimUsernameResponse: voter_token
  - SubmitBallotResponse: ballot_id, message
  - MyBallotResponse: ranking, submitted_at
  - ClosePollResponse: closed_at, snapshot
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: poll metadata and lifecycle state
  - Option: voting option with its ordinal (candidate index)
  - Ballot: voter submission metadata
  - Ranking: one option's rank on one ballot
  - WinnerOption / TallyRound / IRVResult: instant-runoff outcome
  - ResultSnapshot: immutable sealed result record

# Ballot Encoding

A ballot is a full ranking of all options. ranking[i] holds the rank the
voter gave the option with ordinal i, 1 being the top choice:

	options (by ordinal): [Pizza, Sushi, Tacos]
	ranking:              [1, 3, 2]   // Pizza > Tacos > Sushi

# Constants

Status values:

	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"

Voting method:

	MethodIRV = "irv"

Device roles:

	RoleVoter = "voter"
	RoleAdmin = "admin"

Platforms:

	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
*/
package models
