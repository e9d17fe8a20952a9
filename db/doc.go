// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - poll: Poll metadata and lifecycle state
  - option: Voting options per poll, each with its ordinal (candidate index)
  - username_claim: Maps usernames to voter tokens
  - ballot: One ballot per voter per poll
  - ranking: The rank each ballot gives each option (1 = top choice)
  - result_snapshot: Immutable instant-runoff results
  - device: Registered devices
  - device_poll: Links devices to polls

# Relationships

	poll 1──* option
	poll 1──* username_claim
	poll 1──* ballot
	ballot 1──* ranking
	poll 1──* result_snapshot
	device *──* poll (via device_poll)

All foreign keys use ON DELETE CASCADE.

# Ordinals

option.ordinal is assigned in insertion order per poll and never changes. It
is the index voters rank against (ranking arrays are ordered by ordinal) and
the tie-break order of the instant-runoff algorithm, so (poll_id, ordinal) is
unique.

# Indexes

Performance indexes on:

  - poll.share_slug (unique)
  - poll.status
  - option.poll_id
  - ballot.poll_id
  - ballot.(poll_id, voter_token)
  - ranking.option_id
  - device.device_uuid (unique)
*/
package db
