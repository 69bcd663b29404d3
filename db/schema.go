// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// Integer key generation differs between backends, so each database type
// gets its own schema text.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := schemaPostgres
	if databaseType == "sqlite" {
		schema = schemaSQLite
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// "authorization" is a reserved word in PostgreSQL, hence the quoting.
const schemaPostgres = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Login secrets, one per user
CREATE TABLE IF NOT EXISTS secret (
    userid INTEGER PRIMARY KEY REFERENCES users(id),
    password TEXT NOT NULL
);

-- Token + flags, one row per user for the account's whole lifetime
CREATE TABLE IF NOT EXISTS "authorization" (
    userid INTEGER PRIMARY KEY REFERENCES users(id),
    token TEXT NOT NULL DEFAULT '',
    isvalid BOOLEAN NOT NULL DEFAULT FALSE,
    issuperuser BOOLEAN NOT NULL DEFAULT FALSE
);

-- Incident reports
CREATE TABLE IF NOT EXISTS events (
    id SERIAL PRIMARY KEY,
    date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    eventtype TEXT NOT NULL,
    description TEXT,
    country TEXT,
    city TEXT,
    street TEXT,
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL,
    submitterid INTEGER NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_events_coords ON events(latitude, longitude);
CREATE INDEX IF NOT EXISTS idx_events_submitter ON events(submitterid);

-- Credibility votes
CREATE TABLE IF NOT EXISTS votes (
    userid INTEGER NOT NULL REFERENCES users(id),
    eventid INTEGER NOT NULL REFERENCES events(id),
    PRIMARY KEY (userid, eventid)
);

CREATE INDEX IF NOT EXISTS idx_votes_event ON votes(eventid);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS secret (
    userid INTEGER PRIMARY KEY REFERENCES users(id),
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS "authorization" (
    userid INTEGER PRIMARY KEY REFERENCES users(id),
    token TEXT NOT NULL DEFAULT '',
    isvalid BOOLEAN NOT NULL DEFAULT FALSE,
    issuperuser BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    eventtype TEXT NOT NULL,
    description TEXT,
    country TEXT,
    city TEXT,
    street TEXT,
    latitude REAL NOT NULL,
    longitude REAL NOT NULL,
    submitterid INTEGER NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_events_coords ON events(latitude, longitude);
CREATE INDEX IF NOT EXISTS idx_events_submitter ON events(submitterid);

CREATE TABLE IF NOT EXISTS votes (
    userid INTEGER NOT NULL REFERENCES users(id),
    eventid INTEGER NOT NULL REFERENCES events(id),
    PRIMARY KEY (userid, eventid)
);

CREATE INDEX IF NOT EXISTS idx_votes_event ON votes(eventid);
`
