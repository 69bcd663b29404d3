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

// UserStore persists accounts along with their login secret and
// authorization record.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user together with its secret and authorization rows and
// returns the generated user id.
//
// The three inserts are separate statements, not a transaction. A failure
// after the users row exists triggers explicit compensating deletes so that
// registration stays all-or-nothing.
func (s *UserStore) Create(username, email, password string) (int, error) {
	var id int
	err := s.db.QueryRow(`
		INSERT INTO users (username, email, created)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, email, time.Now()).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, ErrCreationFailed
	}
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("%w: username or email already in use", ErrCreationFailed)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: inserting user: %v", ErrStoreUnavailable, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO secret (userid, password)
		VALUES ($1, $2)
	`, id, password)
	if err != nil {
		s.compensate(id, false)
		return 0, fmt.Errorf("%w: inserting secret: %v", ErrStoreUnavailable, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO "authorization" (userid, token, isvalid, issuperuser)
		VALUES ($1, '', FALSE, FALSE)
	`, id)
	if err != nil {
		s.compensate(id, true)
		return 0, fmt.Errorf("%w: inserting authorization: %v", ErrStoreUnavailable, err)
	}

	return id, nil
}

// compensate undoes a partially created registration.
func (s *UserStore) compensate(id int, secretInserted bool) {
	if secretInserted {
		if _, err := s.db.Exec(`DELETE FROM secret WHERE userid = $1`, id); err != nil {
			slog.Error("compensating secret delete failed", "user_id", id, "error", err)
		}
	}
	if _, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, id); err != nil {
		slog.Error("compensating user delete failed", "user_id", id, "error", err)
	}
}

// GetByID returns the user with the given id.
func (s *UserStore) GetByID(id int) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, username, email, created FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.Created)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: querying user by id: %v", ErrStoreUnavailable, err)
	}
	return u, nil
}

// GetByEmail returns the user with the given email address.
func (s *UserStore) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, username, email, created FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Username, &u.Email, &u.Created)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: querying user by email: %v", ErrStoreUnavailable, err)
	}
	return u, nil
}

// Remove deletes a user along with its secret and authorization rows.
// Returns whether a users row was actually removed.
func (s *UserStore) Remove(id int) (bool, error) {
	if _, err := s.db.Exec(`DELETE FROM "authorization" WHERE userid = $1`, id); err != nil {
		return false, fmt.Errorf("%w: deleting authorization: %v", ErrStoreUnavailable, err)
	}
	if _, err := s.db.Exec(`DELETE FROM secret WHERE userid = $1`, id); err != nil {
		return false, fmt.Errorf("%w: deleting secret: %v", ErrStoreUnavailable, err)
	}

	res, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: deleting user: %v", ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: deleting user: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}
