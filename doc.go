// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Hoodwatch API server.

Hoodwatch is a neighborhood-security incident backend: users register, log
in for a bearer token, report geolocated events, and vote on events'
credibility.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SERVICE_KEYS=key1 go run main.go

Or with flags:

	go run main.go -p 4775 -d "postgres://..." --service-keys key1,key2

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite path
  - SERVICE_KEYS (--service-keys): comma-separated service key allow-list

Optional settings:

  - PORT (-p): Server port (default: 4775)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - GEOCODER_URL (-g): geocoding service base URL

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, sessions, events, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request gate, logging, JSON helpers
  - models: Domain and request/response types
  - storage: SQL access for users, events, and votes
  - auth: Credential checks and bearer token lifecycle
  - geocode: Client for the external address/coordinate service
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
