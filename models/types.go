package models

import "time"

// Event type constants
const (
	EventCarjacking  = "CARJACKING"
	EventBurglary    = "BURGLARY"
	EventRobbery     = "ROBBERY"
	EventTheft       = "THEFT"
	EventShadyPeople = "SHADY_PEOPLE"
	EventScammers    = "SCAMMERS"
)

// EventTypes lists every recognized event type.
var EventTypes = []string{
	EventCarjacking,
	EventBurglary,
	EventRobbery,
	EventTheft,
	EventShadyPeople,
	EventScammers,
}

// ValidEventType reports whether s is a recognized event type.
func ValidEventType(s string) bool {
	for _, t := range EventTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Request types

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Either coordinates or a street address; the missing half is resolved
// through the geocoding service.
type CreateEventRequest struct {
	EventType   string   `json:"event_type"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Street      string   `json:"street"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Response types

type CreateUserResponse struct {
	UserID int `json:"user_id"`
}

type AuthTokenResponse struct {
	AuthToken string `json:"auth_token"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
}

type CreateEventResponse struct {
	EventID int `json:"event_id"`
}

type VoteResponse struct {
	EventID int `json:"event_id"`
	Votes   int `json:"votes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Created  time.Time `json:"created"`
}

type Event struct {
	ID          int       `json:"id"`
	Date        time.Time `json:"date"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Street      string    `json:"street"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	SubmitterID int       `json:"submitter_id"`
	Votes       int       `json:"votes"` // derived, not stored
}

type Vote struct {
	UserID  int `json:"user_id"`
	EventID int `json:"event_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
