// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geocode is a thin client for the external geocoding service used
when creating events.

Submitters may provide either coordinates or a street address; the missing
half is resolved here:

	lat, lon, err := geo.Coordinates("Italy", "Milan", "Via Golgi 40")
	country, city, street, err := geo.Address(45.478, 9.227)

The client expects the Google geocoding response shape. BaseURL is injected
through configuration, so tests stand up an httptest server with canned
payloads instead of touching the network.
*/
package geocode
