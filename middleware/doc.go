// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Request Gate

RequestGate sits between CORS and the router and enforces the two-level
credential scheme:

  - service_key header: static allow-list gating all API access
  - auth_token header: bearer token identifying the calling user

OPTIONS preflights and /health pass untouched. GET requests, /login, and
user registration need only the service key; every other request must also
carry a token that resolves to a user.

# Helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON encoding so
handlers stay focused on semantics. WithLogging emits a structured log line
per request with method, path, and duration.
*/
package middleware
