// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"database/sql"
	"strconv"
	"testing"

	"github.com/hoodwatch/hoodwatch/auth"
	"github.com/hoodwatch/hoodwatch/storage"
	"github.com/hoodwatch/hoodwatch/testutil"
)

// testDeps bundles the stores and authenticator handler tests share.
type testDeps struct {
	conn   *sql.DB
	users  *storage.UserStore
	votes  *storage.VoteStore
	events *storage.EventStore
	authn  *auth.Authenticator
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	votes := storage.NewVoteStore(conn)
	return &testDeps{
		conn:   conn,
		users:  storage.NewUserStore(conn),
		votes:  votes,
		events: storage.NewEventStore(conn, votes),
		authn:  auth.NewAuthenticator(conn, testutil.GetTestConfig().ServiceKeys),
	}
}

// login issues a token for the user through the authenticator.
func (d *testDeps) login(t *testing.T, userID int) string {
	t.Helper()

	token, err := d.authn.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
