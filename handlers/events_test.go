// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoodwatch/hoodwatch/geocode"
	"github.com/hoodwatch/hoodwatch/handlers"
	"github.com/hoodwatch/hoodwatch/middleware"
	"github.com/hoodwatch/hoodwatch/models"
	"github.com/hoodwatch/hoodwatch/testutil"
)

const geoFixture = `{
	"status": "OK",
	"results": [{
		"geometry": {"location": {"lat": 45.478, "lng": 9.227}},
		"address_components": [
			{"long_name": "40", "types": ["street_number"]},
			{"long_name": "Via Golgi", "types": ["route"]},
			{"long_name": "Milan", "types": ["administrative_area_level_3"]},
			{"long_name": "Italy", "types": ["country"]}
		]
	}]
}`

const geoEmptyFixture = `{"status": "ZERO_RESULTS", "results": []}`

// newGeoStub serves a canned geocoding payload.
func newGeoStub(t *testing.T, payload string) *geocode.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	return geocode.NewClient(srv.URL)
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateEvent(t *testing.T) {
	deps := newTestDeps(t)
	h := handlers.NewEventHandler(deps.events, deps.authn, newGeoStub(t, geoFixture))

	alice := testutil.CreateTestUser(t, deps.conn, "alice", "alice@example.com", "Secret123", false)
	token := deps.login(t, alice)

	t.Run("with coordinates and address", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType:   models.EventBurglary,
			Description: "broken window",
			Country:     "Italy",
			City:        "Milan",
			Street:      "Via Roma",
			Latitude:    floatPtr(45.46),
			Longitude:   floatPtr(9.19),
		}, map[string]string{middleware.AuthTokenHeader: token})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreateEventResponse
		testutil.AssertJSON(t, w, &resp)

		e, err := deps.events.GetByID(resp.EventID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if e.SubmitterID != alice || e.Latitude != 45.46 {
			t.Errorf("stored event = %+v, want alice's report at 45.46", e)
		}
		// Provided address wins over the geocoder
		if e.Street != "Via Roma" {
			t.Errorf("stored street = %q, want Via Roma", e.Street)
		}
	})

	t.Run("coordinates only, address filled by geocoder", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType: models.EventTheft,
			Latitude:  floatPtr(45.478),
			Longitude: floatPtr(9.227),
		}, map[string]string{middleware.AuthTokenHeader: token})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreateEventResponse
		testutil.AssertJSON(t, w, &resp)

		e, err := deps.events.GetByID(resp.EventID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if e.Country != "Italy" || e.City != "Milan" || e.Street != "Via Golgi" {
			t.Errorf("geocoded address = %q/%q/%q, want Italy/Milan/Via Golgi", e.Country, e.City, e.Street)
		}
	})

	t.Run("address only, coordinates from geocoder", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType: models.EventScammers,
			Country:   "Italy",
			City:      "Milan",
			Street:    "Via Golgi",
		}, map[string]string{middleware.AuthTokenHeader: token})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreateEventResponse
		testutil.AssertJSON(t, w, &resp)

		e, err := deps.events.GetByID(resp.EventID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if e.Latitude != 45.478 || e.Longitude != 9.227 {
			t.Errorf("geocoded coordinates = (%v, %v), want (45.478, 9.227)", e.Latitude, e.Longitude)
		}
	})

	t.Run("unknown event type", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType: "JAYWALKING",
			Latitude:  floatPtr(45.0),
			Longitude: floatPtr(9.0),
		}, map[string]string{middleware.AuthTokenHeader: token})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType: models.EventTheft,
			Latitude:  floatPtr(45.0),
			Longitude: floatPtr(9.0),
		}, map[string]string{middleware.AuthTokenHeader: "bogus"})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestCreateEventGeocoderNoResult(t *testing.T) {
	deps := newTestDeps(t)
	h := handlers.NewEventHandler(deps.events, deps.authn, newGeoStub(t, geoEmptyFixture))

	alice := testutil.CreateTestUser(t, deps.conn, "alice", "alice@example.com", "Secret123", false)
	token := deps.login(t, alice)

	t.Run("unresolvable address is rejected", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType: models.EventTheft,
			Country:   "Nowhere",
			City:      "Nowhere",
			Street:    "Nowhere",
		}, map[string]string{middleware.AuthTokenHeader: token})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("coordinates survive a failed address lookup", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/events", models.CreateEventRequest{
			EventType: models.EventTheft,
			Latitude:  floatPtr(45.0),
			Longitude: floatPtr(9.0),
		}, map[string]string{middleware.AuthTokenHeader: token})
		w := httptest.NewRecorder()
		h.CreateEvent(w, req)

		// Address enrichment failed, the report still goes through
		testutil.AssertStatus(t, w, http.StatusCreated)
	})
}

func TestListEvents(t *testing.T) {
	deps := newTestDeps(t)
	h := handlers.NewEventHandler(deps.events, deps.authn, newGeoStub(t, geoFixture))

	alice := testutil.CreateTestUser(t, deps.conn, "alice", "alice@example.com", "Secret123", false)
	testutil.CreateTestEvent(t, deps.conn, alice, models.EventTheft, 5.0, 5.0)
	testutil.CreateTestEvent(t, deps.conn, alice, models.EventBurglary, 6.0, 6.0)
	testutil.CreateTestEvent(t, deps.conn, alice, models.EventTheft, 50.0, 50.0)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCount  int
	}{
		{"bounding box", "?latMin=0&latMax=10&lonMin=0&lonMax=10", http.StatusOK, 2},
		{"radius", "?lat=5&lon=5&rad=2", http.StatusOK, 2},
		{"radius excludes far events", "?lat=50&lon=50&rad=1", http.StatusOK, 1},
		{"missing parameters", "", http.StatusBadRequest, 0},
		{"partial box", "?latMin=0&latMax=10", http.StatusBadRequest, 0},
		{"malformed numbers", "?latMin=a&latMax=b&lonMin=c&lonMax=d", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/events"+tt.query, nil, nil)
			w := httptest.NewRecorder()
			h.ListEvents(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusOK {
				var events []models.Event
				testutil.AssertJSON(t, w, &events)
				if len(events) != tt.wantCount {
					t.Errorf("ListEvents() returned %d events, want %d", len(events), tt.wantCount)
				}
			}
		})
	}
}

func TestGetEvent(t *testing.T) {
	deps := newTestDeps(t)
	h := handlers.NewEventHandler(deps.events, deps.authn, newGeoStub(t, geoFixture))

	alice := testutil.CreateTestUser(t, deps.conn, "alice", "alice@example.com", "Secret123", false)
	bob := testutil.CreateTestUser(t, deps.conn, "bob", "bob@example.com", "Secret123", false)
	id := testutil.CreateTestEvent(t, deps.conn, alice, models.EventRobbery, 45.0, 9.0)
	testutil.AddTestVote(t, deps.conn, bob, id)

	t.Run("found with vote count", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/events/1", nil, nil)
		req.SetPathValue("id", itoa(id))
		w := httptest.NewRecorder()
		h.GetEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var e models.Event
		testutil.AssertJSON(t, w, &e)
		if e.ID != id || e.Votes != 1 {
			t.Errorf("GetEvent() = id %d votes %d, want id %d votes 1", e.ID, e.Votes, id)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/events/9999", nil, nil)
		req.SetPathValue("id", "9999")
		w := httptest.NewRecorder()
		h.GetEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/events/abc", nil, nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		h.GetEvent(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestDeleteEvent(t *testing.T) {
	deps := newTestDeps(t)
	h := handlers.NewEventHandler(deps.events, deps.authn, newGeoStub(t, geoFixture))

	owner := testutil.CreateTestUser(t, deps.conn, "owner", "owner@example.com", "Secret123", false)
	super := testutil.CreateTestUser(t, deps.conn, "admin", "admin@example.com", "Secret123", true)
	other := testutil.CreateTestUser(t, deps.conn, "other", "other@example.com", "Secret123", false)

	ownerToken := deps.login(t, owner)
	superToken := deps.login(t, super)
	otherToken := deps.login(t, other)

	deleteReq := func(eventID int, token string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/events/x", nil, map[string]string{
			middleware.AuthTokenHeader: token,
		})
		req.SetPathValue("id", itoa(eventID))
		w := httptest.NewRecorder()
		h.DeleteEvent(w, req)
		return w
	}

	t.Run("non-owner non-superuser is rejected", func(t *testing.T) {
		id := testutil.CreateTestEvent(t, deps.conn, owner, models.EventTheft, 45.0, 9.0)
		testutil.AssertStatus(t, deleteReq(id, otherToken), http.StatusUnauthorized)

		// Event still there
		if _, err := deps.events.GetByID(id); err != nil {
			t.Errorf("event should survive rejected delete: %v", err)
		}
	})

	t.Run("owner may delete own event", func(t *testing.T) {
		id := testutil.CreateTestEvent(t, deps.conn, owner, models.EventTheft, 45.0, 9.0)
		testutil.AssertStatus(t, deleteReq(id, ownerToken), http.StatusNoContent)
	})

	t.Run("superuser may delete anyone's event", func(t *testing.T) {
		id := testutil.CreateTestEvent(t, deps.conn, owner, models.EventTheft, 45.0, 9.0)
		testutil.AssertStatus(t, deleteReq(id, superToken), http.StatusNoContent)
	})

	t.Run("missing event", func(t *testing.T) {
		testutil.AssertStatus(t, deleteReq(9999, ownerToken), http.StatusNotFound)
	})

	t.Run("invalid token", func(t *testing.T) {
		id := testutil.CreateTestEvent(t, deps.conn, owner, models.EventTheft, 45.0, 9.0)
		testutil.AssertStatus(t, deleteReq(id, "bogus"), http.StatusUnauthorized)
	})
}
