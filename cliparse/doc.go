// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

# Settings

Required:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite path
  - SERVICE_KEYS (--service-keys): comma-separated service key allow-list

Optional:

  - PORT (-p): server port (default: 4775)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - GEOCODER_URL (-g): geocoding service base URL (default: Google's API)

# Precedence

CLI flags win over environment variables. Secrets should come from the
environment in production; the flags exist for local development.
*/
package cliparse
