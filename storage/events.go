// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hoodwatch/hoodwatch/models"
)

// VoteCounter reports how many votes an event has accumulated. Satisfied by
// *VoteStore; tests substitute a failing fake to exercise degraded lookups.
type VoteCounter interface {
	CountVotes(eventID int) (int, error)
}

// EventStore persists incident reports.
type EventStore struct {
	db    *sql.DB
	votes VoteCounter
}

func NewEventStore(db *sql.DB, votes VoteCounter) *EventStore {
	return &EventStore{db: db, votes: votes}
}

// Create persists an event and returns the generated id. The creation date
// is set here, not by the caller.
func (s *EventStore) Create(e models.Event) (int, error) {
	if !models.ValidEventType(e.EventType) {
		return 0, fmt.Errorf("%w: unknown event type %q", ErrMalformedEvent, e.EventType)
	}

	var id int
	err := s.db.QueryRow(`
		INSERT INTO events (date, eventtype, description, country, city, street, latitude, longitude, submitterid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, time.Now(), e.EventType, e.Description, e.Country, e.City, e.Street,
		e.Latitude, e.Longitude, e.SubmitterID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, ErrCreationFailed
	}
	if err != nil {
		return 0, fmt.Errorf("%w: inserting event: %v", ErrStoreUnavailable, err)
	}
	return id, nil
}

// Delete removes an event. Returns whether a row was actually removed; an
// unknown id is not an error.
func (s *EventStore) Delete(id int) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: deleting event: %v", ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: deleting event: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

// GetByID returns the event with the given id, enriched with its vote
// count. A failing vote subsystem degrades the count to 0 rather than
// failing the lookup.
func (s *EventStore) GetByID(id int) (models.Event, error) {
	var e models.Event
	err := s.db.QueryRow(`
		SELECT id, date, eventtype, description, country, city, street, latitude, longitude, submitterid
		FROM events WHERE id = $1
	`, id).Scan(&e.ID, &e.Date, &e.EventType, &e.Description, &e.Country,
		&e.City, &e.Street, &e.Latitude, &e.Longitude, &e.SubmitterID)

	if err == sql.ErrNoRows {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: querying event by id: %v", ErrStoreUnavailable, err)
	}

	e.Votes = s.countOrZero(e.ID)
	return e, nil
}

// GetByArea returns all events strictly inside the bounding box, ordered by
// ascending id. Bounds are exclusive: an event at exactly latMax is not
// included.
func (s *EventStore) GetByArea(latMin, latMax, lonMin, lonMax float64) ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, date, eventtype, description, country, city, street, latitude, longitude, submitterid
		FROM events
		WHERE latitude > $1 AND latitude < $2 AND longitude > $3 AND longitude < $4
		ORDER BY id
	`, latMin, latMax, lonMin, lonMax)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events by area: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Date, &e.EventType, &e.Description, &e.Country,
			&e.City, &e.Street, &e.Latitude, &e.Longitude, &e.SubmitterID); err != nil {
			return nil, fmt.Errorf("%w: scanning event: %v", ErrStoreUnavailable, err)
		}
		e.Votes = s.countOrZero(e.ID)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating events: %v", ErrStoreUnavailable, err)
	}
	return events, nil
}

// GetByRadius returns events within a square approximation of a circle
// around (lat, lon). Not a true great-circle search; callers must not
// assume geometric precision.
func (s *EventStore) GetByRadius(lat, lon, radius float64) ([]models.Event, error) {
	return s.GetByArea(lat-radius, lat+radius, lon-radius, lon+radius)
}

// GetSubmitter returns the id of the user who submitted the event.
func (s *EventStore) GetSubmitter(id int) (int, error) {
	var submitterID int
	err := s.db.QueryRow(`SELECT submitterid FROM events WHERE id = $1`, id).Scan(&submitterID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: querying event submitter: %v", ErrStoreUnavailable, err)
	}
	return submitterID, nil
}

// GetByUser returns all events submitted by the given user, without vote
// counts.
func (s *EventStore) GetByUser(userID int) ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, date, eventtype, description, country, city, street, latitude, longitude, submitterid
		FROM events WHERE submitterid = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events by user: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Date, &e.EventType, &e.Description, &e.Country,
			&e.City, &e.Street, &e.Latitude, &e.Longitude, &e.SubmitterID); err != nil {
			return nil, fmt.Errorf("%w: scanning event: %v", ErrStoreUnavailable, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating events: %v", ErrStoreUnavailable, err)
	}
	return events, nil
}

// countOrZero swallows vote-count failures; event lookups must not fail
// merely because the vote subsystem is degraded.
func (s *EventStore) countOrZero(eventID int) int {
	n, err := s.votes.CountVotes(eventID)
	if err != nil {
		slog.Warn("vote count unavailable, defaulting to 0", "event_id", eventID, "error", err)
		return 0
	}
	return n
}
