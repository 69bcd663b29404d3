// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geocode_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoodwatch/hoodwatch/geocode"
)

func newStub(t *testing.T, status int, payload string) (*geocode.Client, *string) {
	t.Helper()

	var lastQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query().Get("address")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	return geocode.NewClient(srv.URL), &lastQuery
}

func TestCoordinates(t *testing.T) {
	c, lastQuery := newStub(t, http.StatusOK, `{
		"status": "OK",
		"results": [{
			"geometry": {"location": {"lat": 45.4783, "lng": 9.2277}},
			"address_components": []
		}]
	}`)

	lat, lon, err := c.Coordinates("Italy", "Milan", "Via Golgi")
	if err != nil {
		t.Fatalf("Coordinates() error = %v", err)
	}
	if lat != 45.4783 || lon != 9.2277 {
		t.Errorf("Coordinates() = (%v, %v), want (45.4783, 9.2277)", lat, lon)
	}
	if *lastQuery != "Italy, Milan, Via Golgi" {
		t.Errorf("queried address = %q, want the comma-joined triple", *lastQuery)
	}
}

func TestAddress(t *testing.T) {
	c, lastQuery := newStub(t, http.StatusOK, `{
		"status": "OK",
		"results": [{
			"geometry": {"location": {"lat": 45.4783, "lng": 9.2277}},
			"address_components": [
				{"long_name": "40", "types": ["street_number"]},
				{"long_name": "Via Golgi", "types": ["route"]},
				{"long_name": "Milan", "types": ["administrative_area_level_3", "political"]},
				{"long_name": "Lombardy", "types": ["administrative_area_level_1", "political"]},
				{"long_name": "Italy", "types": ["country", "political"]}
			]
		}]
	}`)

	country, city, street, err := c.Address(45.4783, 9.2277)
	if err != nil {
		t.Fatalf("Address() error = %v", err)
	}
	if country != "Italy" || city != "Milan" || street != "Via Golgi" {
		t.Errorf("Address() = %q/%q/%q, want Italy/Milan/Via Golgi", country, city, street)
	}
	if *lastQuery != "45.4783,9.2277" {
		t.Errorf("queried address = %q, want the coordinate pair", *lastQuery)
	}
}

func TestAddressPartialComponents(t *testing.T) {
	c, _ := newStub(t, http.StatusOK, `{
		"status": "OK",
		"results": [{
			"geometry": {"location": {"lat": 0, "lng": 0}},
			"address_components": [
				{"long_name": "Italy", "types": ["country"]}
			]
		}]
	}`)

	country, city, street, err := c.Address(0, 0)
	if err != nil {
		t.Fatalf("Address() error = %v", err)
	}
	if country != "Italy" || city != "" || street != "" {
		t.Errorf("Address() = %q/%q/%q, want Italy with empty city and street", country, city, street)
	}
}

func TestNoResult(t *testing.T) {
	c, _ := newStub(t, http.StatusOK, `{"status": "ZERO_RESULTS", "results": []}`)

	if _, _, err := c.Coordinates("Nowhere", "Nowhere", "Nowhere"); !errors.Is(err, geocode.ErrNoResult) {
		t.Errorf("Coordinates() error = %v, want ErrNoResult", err)
	}
	if _, _, _, err := c.Address(0, 0); !errors.Is(err, geocode.ErrNoResult) {
		t.Errorf("Address() error = %v, want ErrNoResult", err)
	}
}

func TestServerError(t *testing.T) {
	c, _ := newStub(t, http.StatusInternalServerError, "boom")

	if _, _, err := c.Coordinates("Italy", "Milan", "Via Golgi"); err == nil {
		t.Error("Coordinates() error = nil, want an error on a 500")
	}
}

func TestUnreachableServer(t *testing.T) {
	c := geocode.NewClient("http://127.0.0.1:1")

	if _, _, err := c.Coordinates("Italy", "Milan", "Via Golgi"); err == nil {
		t.Error("Coordinates() error = nil, want a transport error")
	}
}
