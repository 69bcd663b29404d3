// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hoodwatch/hoodwatch/auth"
	"github.com/hoodwatch/hoodwatch/geocode"
	"github.com/hoodwatch/hoodwatch/middleware"
	"github.com/hoodwatch/hoodwatch/models"
	"github.com/hoodwatch/hoodwatch/storage"
)

type EventHandler struct {
	events *storage.EventStore
	authn  *auth.Authenticator
	geo    *geocode.Client
}

func NewEventHandler(events *storage.EventStore, authn *auth.Authenticator, geo *geocode.Client) *EventHandler {
	return &EventHandler{events: events, authn: authn, geo: geo}
}

// CreateEvent handles POST /events
// Accepts either coordinates or a street address; the missing half is
// resolved through the geocoding service.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authn.ResolveToken(r.Header.Get(middleware.AuthTokenHeader))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Your auth token is not valid")
		return
	}

	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidEventType(req.EventType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown event type "+req.EventType)
		return
	}

	event := models.Event{
		EventType:   req.EventType,
		Description: req.Description,
		Country:     req.Country,
		City:        req.City,
		Street:      req.Street,
		SubmitterID: userID,
	}

	if req.Latitude != nil && req.Longitude != nil {
		event.Latitude = *req.Latitude
		event.Longitude = *req.Longitude

		// Fill in the address when the submitter gave none. A geocoder
		// outage leaves the fields empty rather than failing the report.
		if req.Country == "" && req.City == "" && req.Street == "" {
			country, city, street, err := h.geo.Address(event.Latitude, event.Longitude)
			if err != nil {
				slog.Warn("reverse geocoding failed", "error", err)
			} else {
				event.Country = country
				event.City = city
				event.Street = street
			}
		}
	} else {
		lat, lon, err := h.geo.Coordinates(req.Country, req.City, req.Street)
		if err != nil {
			slog.Warn("geocoding failed", "country", req.Country, "city", req.City, "error", err)
			middleware.ErrorResponse(w, http.StatusBadRequest, "Please provide a valid address or coordinates")
			return
		}
		event.Latitude = lat
		event.Longitude = lon
	}

	id, err := h.events.Create(event)
	if errors.Is(err, storage.ErrMalformedEvent) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown event type "+req.EventType)
		return
	}
	if err != nil {
		slog.Error("failed to create event", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	slog.Info("event created", "event_id", id, "event_type", req.EventType, "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{
		EventID: id,
	})
}

// ListEvents handles GET /events
// Filters by bounding box (latMin, latMax, lonMin, lonMax) or by center
// plus radius (lat, lon, rad). Exactly one of the two forms is required.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if latMin, latMax, lonMin, lonMax, ok := parseFloats(q.Get("latMin"), q.Get("latMax"), q.Get("lonMin"), q.Get("lonMax")); ok {
		events, err := h.events.GetByArea(latMin, latMax, lonMin, lonMax)
		if err != nil {
			slog.Error("failed to query events by area", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, events)
		return
	}

	if lat, lon, rad, _, ok := parseFloats(q.Get("lat"), q.Get("lon"), q.Get("rad"), "0"); ok {
		events, err := h.events.GetByRadius(lat, lon, rad)
		if err != nil {
			slog.Error("failed to query events by radius", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, events)
		return
	}

	middleware.ErrorResponse(w, http.StatusBadRequest, "Please check the parameters")
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id must be a valid positive integer")
		return
	}

	event, err := h.events.GetByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No event with id "+r.PathValue("id"))
		return
	}
	if err != nil {
		slog.Error("failed to query event", "event_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/{id}
// Permitted for the submitter of the event or for any superuser.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id must be a valid positive integer")
		return
	}

	userID, err := h.authn.ResolveToken(r.Header.Get(middleware.AuthTokenHeader))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Your auth token is not valid")
		return
	}

	super, err := h.authn.IsSuperuser(userID)
	if err != nil {
		slog.Error("failed to check superuser flag", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	owner, err := h.events.GetSubmitter(id)
	if errors.Is(err, storage.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No event with id "+r.PathValue("id"))
		return
	}
	if err != nil {
		slog.Error("failed to query event submitter", "event_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if userID != owner && !super {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You are not the owner of event "+r.PathValue("id"))
		return
	}

	removed, err := h.events.Delete(id)
	if err != nil {
		slog.Error("failed to delete event", "event_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "No event with id "+r.PathValue("id"))
		return
	}

	slog.Info("event deleted", "event_id", id, "user_id", userID, "superuser", super)

	w.WriteHeader(http.StatusNoContent)
}

// parseFloats parses four query parameters at once; ok is false if any is
// missing or malformed.
func parseFloats(a, b, c, d string) (float64, float64, float64, float64, bool) {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	fc, errC := strconv.ParseFloat(c, 64)
	fd, errD := strconv.ParseFloat(d, 64)
	if errA != nil || errB != nil || errC != nil || errD != nil {
		return 0, 0, 0, 0, false
	}
	return fa, fb, fc, fd, true
}
