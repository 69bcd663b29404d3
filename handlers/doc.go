// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handlers

  - UserHandler: registration with username/email/password validation, user
    lookup, and a user's submitted events
  - SessionHandler: login (credential check + token issue) and logout
    (token resolve + invalidate)
  - EventHandler: event creation with geocoding, bounding-box and radius
    listing, lookup, and deletion
  - VotingHandler: casting and retracting credibility votes

Handlers hold their dependencies (stores, authenticator, geocoding client)
through constructors; they parse parameters, call into storage/auth, and
map error kinds to status codes. No SQL lives here.

# Status Code Mapping

  - storage.ErrNotFound -> 404
  - storage.ErrNoMatch -> 401
  - storage.ErrMalformedEvent -> 400
  - storage.ErrDuplicateVote -> 409
  - storage.ErrCreationFailed -> 400 (uniqueness conflicts)
  - storage.ErrStoreUnavailable -> 500, with the driver error logged but
    never echoed to the client

# Deletion Policy

An event may be deleted by its submitter, or by any user carrying the
superuser flag. Everyone else gets 401.
*/
package handlers
