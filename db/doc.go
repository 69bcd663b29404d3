// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Two schema texts are maintained, one for PostgreSQL and one for SQLite,
because auto-increment key syntax differs between the two.

# Tables

The schema includes:

  - users: registered accounts
  - secret: login password per user
  - "authorization": bearer token, validity flag, and superuser flag per user
  - events: reported incidents with coordinates and submitter
  - votes: one credibility vote per (user, event) pair

# Relationships

	users 1──1 secret
	users 1──1 "authorization"
	users 1──* events
	users *──* events (via votes)

The authorization table is quoted everywhere because AUTHORIZATION is a
reserved word in PostgreSQL.

# Indexes

Performance indexes on:

  - users.username (unique)
  - users.email (unique)
  - events.(latitude, longitude)
  - events.submitterid
  - votes.eventid
*/
package db
