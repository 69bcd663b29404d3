// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoodwatch/hoodwatch/storage"
)

// NewToken creates a fresh opaque bearer token (128-bit random identifier).
func NewToken() string {
	return uuid.NewString()
}

// Authenticator translates credentials to tokens and tokens to user
// identity. It owns the secret and authorization tables.
type Authenticator struct {
	db          *sql.DB
	serviceKeys []string
}

func NewAuthenticator(db *sql.DB, serviceKeys []string) *Authenticator {
	return &Authenticator{db: db, serviceKeys: serviceKeys}
}

// CheckPassword looks up the (username, password) pair and returns the
// matching user id. Side-effect-free.
func (a *Authenticator) CheckPassword(username, password string) (int, error) {
	var id int
	err := a.db.QueryRow(`
		SELECT u.id FROM users u
		JOIN secret s ON s.userid = u.id
		WHERE u.username = $1 AND s.password = $2
	`, username, password).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, storage.ErrNoMatch
	}
	if err != nil {
		return 0, fmt.Errorf("%w: checking password: %v", storage.ErrStoreUnavailable, err)
	}
	return id, nil
}

// GenerateToken stores a fresh token against the user with validity=true,
// overwriting any prior token. The old token immediately stops resolving.
func (a *Authenticator) GenerateToken(userID int) (string, error) {
	token := NewToken()
	res, err := a.db.Exec(`
		UPDATE "authorization" SET token = $1, isvalid = TRUE WHERE userid = $2
	`, token, userID)
	if err != nil {
		return "", fmt.Errorf("%w: storing token: %v", storage.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("%w: storing token: %v", storage.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return "", storage.ErrNoMatch
	}
	return token, nil
}

// InvalidateToken flips the user's token to invalid. Idempotent: the token
// value stays in place, only the validity flag changes.
func (a *Authenticator) InvalidateToken(userID int) error {
	_, err := a.db.Exec(`
		UPDATE "authorization" SET isvalid = FALSE WHERE userid = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("%w: invalidating token: %v", storage.ErrStoreUnavailable, err)
	}
	return nil
}

// ResolveToken returns the user id a currently-valid token belongs to. This
// is the sole authority for caller identity.
func (a *Authenticator) ResolveToken(token string) (int, error) {
	if token == "" {
		return 0, storage.ErrNoMatch
	}
	var id int
	err := a.db.QueryRow(`
		SELECT userid FROM "authorization" WHERE token = $1 AND isvalid = TRUE
	`, token).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, storage.ErrNoMatch
	}
	if err != nil {
		return 0, fmt.Errorf("%w: resolving token: %v", storage.ErrStoreUnavailable, err)
	}
	return id, nil
}

// IsSuperuser reports whether the user carries the superuser flag.
func (a *Authenticator) IsSuperuser(userID int) (bool, error) {
	var super bool
	err := a.db.QueryRow(`
		SELECT issuperuser FROM "authorization" WHERE userid = $1
	`, userID).Scan(&super)

	if err == sql.ErrNoRows {
		return false, storage.ErrNoMatch
	}
	if err != nil {
		return false, fmt.Errorf("%w: checking superuser flag: %v", storage.ErrStoreUnavailable, err)
	}
	return super, nil
}

// IsServiceKeyValid checks the key against the static allow-list. Service
// keys gate API access and are a separate trust boundary from user tokens.
func (a *Authenticator) IsServiceKeyValid(key string) bool {
	for _, k := range a.serviceKeys {
		if key == k {
			return true
		}
	}
	return false
}
