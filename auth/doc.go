// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential checking and bearer token lifecycle.

# Tokens

Tokens are opaque random 128-bit identifiers:

	token, err := authn.GenerateToken(userID)
	userID, err := authn.ResolveToken(token)

Each user has exactly one authorization row for the account's lifetime. A
login overwrites the stored token and marks it valid; a logout flips the
validity flag. Token rows are never deleted, so the per-user state machine
is NoToken -> Valid -> Invalid -> Valid and at most one token is valid per
user at any time.

# Login and Logout

The resource layer composes the primitives:

	id, err := authn.CheckPassword(username, password) // NoMatch on bad creds
	token, err := authn.GenerateToken(id)

	id, err := authn.ResolveToken(token) // NoMatch once invalidated
	err = authn.InvalidateToken(id)      // idempotent

# Service Keys

IsServiceKeyValid checks a static allow-list from configuration. Service
keys gate access to the API as a whole and say nothing about which user is
calling; that distinction belongs to tokens.
*/
package auth
