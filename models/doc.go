// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Core entities:

  - User: registered account (id, username, email, created)
  - Event: a reported incident with type, free-text description, address,
    coordinates, and the submitting user
  - Vote: a credibility endorsement, at most one per (user, event) pair

The Votes field on Event is derived from the votes table at query time and
never stored.

# Event Types

Events carry one of a fixed set of type labels:

	CARJACKING, BURGLARY, ROBBERY, THEFT, SHADY_PEOPLE, SCAMMERS

ValidEventType checks membership; storage rejects anything else.

# Request/Response Types

JSON-tagged structs used by the handlers package. Error payloads use
ErrorResponse with an HTTP status text and an optional human message.
*/
package models
