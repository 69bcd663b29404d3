// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geocode

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNoResult means the geocoding service returned no usable match.
var ErrNoResult = errors.New("geocode: no result")

// Client talks to an external address<->coordinate resolution service with
// the Google geocoding response shape. BaseURL is injected so tests can
// point it at a stub server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type response struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
	Status string `json:"status"`
}

// Coordinates resolves a street address to (latitude, longitude).
func (c *Client) Coordinates(country, city, street string) (float64, float64, error) {
	res, err := c.lookup(country + ", " + city + ", " + street)
	if err != nil {
		return 0, 0, err
	}
	loc := res.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// Address resolves (latitude, longitude) to (country, city, street). Fields
// the service does not report come back empty.
func (c *Client) Address(lat, lon float64) (country, city, street string, err error) {
	res, err := c.lookup(fmt.Sprintf("%v,%v", lat, lon))
	if err != nil {
		return "", "", "", err
	}
	for _, comp := range res.Results[0].AddressComponents {
		if len(comp.Types) == 0 {
			continue
		}
		switch comp.Types[0] {
		case "route":
			street = comp.LongName
		case "administrative_area_level_3", "locality":
			city = comp.LongName
		case "country":
			country = comp.LongName
		}
	}
	return country, city, street, nil
}

func (c *Client) lookup(address string) (*response, error) {
	u := c.BaseURL + "/json?address=" + url.QueryEscape(address)

	resp, err := c.HTTPClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("geocode: decoding response: %w", err)
	}
	if len(res.Results) == 0 {
		return nil, ErrNoResult
	}
	return &res, nil
}
