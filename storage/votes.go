// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"database/sql"
	"fmt"
)

// VoteStore persists credibility votes, at most one per (user, event) pair.
type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Vote records a vote by userID on eventID.
func (s *VoteStore) Vote(userID, eventID int) error {
	res, err := s.db.Exec(`
		INSERT INTO votes (userid, eventid) VALUES ($1, $2)
	`, userID, eventID)

	if isUniqueViolation(err) {
		return ErrDuplicateVote
	}
	if err != nil {
		return fmt.Errorf("%w: inserting vote: %v", ErrStoreUnavailable, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: inserting vote: %v", ErrStoreUnavailable, err)
	}
	if n == 0 {
		return ErrCreationFailed
	}
	return nil
}

// Unvote removes userID's vote on eventID. Returns whether a row was
// removed; a non-existent vote is not an error.
func (s *VoteStore) Unvote(userID, eventID int) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM votes WHERE userid = $1 AND eventid = $2
	`, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("%w: deleting vote: %v", ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: deleting vote: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

// CountVotes returns the number of votes for the event, 0 if none exist.
func (s *VoteStore) CountVotes(eventID int) (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE eventid = $1
	`, eventID).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: counting votes: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}
