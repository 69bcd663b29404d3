// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage holds all SQL access for users, events, and votes.

Each store wraps an injected *sql.DB:

	users := storage.NewUserStore(conn)
	votes := storage.NewVoteStore(conn)
	events := storage.NewEventStore(conn, votes)

Tests run the stores against an in-memory SQLite database; production uses
PostgreSQL. Queries use $1-style placeholders, which both drivers accept.

# Error Kinds

Failures are reported as wrapped sentinel errors so callers can match with
errors.Is:

  - ErrNotFound: no matching row
  - ErrNoMatch: credential or token mismatch
  - ErrMalformedEvent: unrecognized event type
  - ErrDuplicateVote: the (user, event) pair already voted
  - ErrCreationFailed: insert produced no key or hit a uniqueness conflict
  - ErrStoreUnavailable: driver or connectivity failure

Raw driver errors are folded into the message of the wrapping error and
logged; they never reach API clients.

# Registration Compensation

UserStore.Create issues three separate inserts (users, secret,
authorization) without a transaction. A failure after the users row exists
triggers explicit compensating deletes, keeping registration
all-or-nothing.

# Vote Enrichment

EventStore lookups attach a vote count through the VoteCounter interface.
When counting fails the count degrades to 0 instead of failing the lookup;
GetByUser deliberately skips enrichment.
*/
package storage
