// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires stores, the authenticator, and the geocoding client
into handlers and defines the route table.

# Routes

Users:

	POST   /users              register
	GET    /users/{id}         user lookup
	GET    /users/{id}/events  user's submitted events

Sessions:

	POST   /login              credentials -> bearer token
	POST   /logout             invalidate the caller's token

Events:

	POST   /events             report an incident
	GET    /events             list by area or radius query parameters
	GET    /events/{id}        lookup with vote count
	DELETE /events/{id}        delete (submitter or superuser)

Voting:

	POST   /events/{id}/vote   cast a vote
	DELETE /events/{id}/vote   retract a vote

The returned handler is wrapped in CORS and the request gate, so every
route already sits behind the service-key and token checks described in
the middleware package.
*/
package router
