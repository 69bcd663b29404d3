// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hoodwatch/hoodwatch/cliparse"
	"github.com/hoodwatch/hoodwatch/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Every test gets its own database; MaxOpenConns(1) keeps the pool
// from opening a second connection to a different memory store.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4775,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		ServiceKeys:  []string{"test-service-key"},
		GeocoderURL:  "http://geocoder.invalid",
	}
}

// CreateTestUser inserts a user with its secret and authorization rows and
// returns the user id.
func CreateTestUser(t *testing.T, conn *sql.DB, username, email, password string, superuser bool) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO users (username, email, created) VALUES ($1, $2, $3) RETURNING id
	`, username, email, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	_, err = conn.Exec(`INSERT INTO secret (userid, password) VALUES ($1, $2)`, id, password)
	if err != nil {
		t.Fatalf("Failed to create test secret: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO "authorization" (userid, token, isvalid, issuperuser) VALUES ($1, '', FALSE, $2)
	`, id, superuser)
	if err != nil {
		t.Fatalf("Failed to create test authorization: %v", err)
	}

	return id
}

// IssueTestToken stores a valid token for the user and returns it.
func IssueTestToken(t *testing.T, conn *sql.DB, userID int, token string) string {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE "authorization" SET token = $1, isvalid = TRUE WHERE userid = $2
	`, token, userID)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// CreateTestEvent inserts an event and returns its id.
func CreateTestEvent(t *testing.T, conn *sql.DB, submitterID int, eventType string, lat, lon float64) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO events (date, eventtype, description, country, city, street, latitude, longitude, submitterid)
		VALUES ($1, $2, 'test event', 'Testland', 'Testville', 'Test St', $3, $4, $5)
		RETURNING id
	`, time.Now(), eventType, lat, lon, submitterID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

// AddTestVote inserts a vote row directly.
func AddTestVote(t *testing.T, conn *sql.DB, userID, eventID int) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO votes (userid, eventid) VALUES ($1, $2)`, userID, eventID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
