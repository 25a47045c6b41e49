// Package session holds per-connection state: the logged-in username and the
// itinerary list produced by the last search. A Session is an explicit handle
// passed into every booking operation, so arbitrarily many sessions can share
// one store; each session executes at most one operation at a time.
package session

import (
	"github.com/google/uuid"

	"github.com/dmitrijs2005/flightbook/internal/models"
)

type Session struct {
	id          uuid.UUID
	username    string
	itineraries []models.Itinerary
}

// New creates an unauthenticated session with a fresh id for log correlation.
func New() *Session {
	return &Session{id: uuid.New()}
}

func (s *Session) ID() uuid.UUID { return s.id }

// LoggedIn reports whether a user is authenticated on this session.
func (s *Session) LoggedIn() bool { return s.username != "" }

// Username returns the logged-in username, or "" when not authenticated.
func (s *Session) Username() string { return s.username }

// Authenticate marks the session as owned by username and drops any itinerary
// list from a previous login.
func (s *Session) Authenticate(username string) {
	s.username = username
	s.itineraries = nil
}

// SetItineraries replaces the session's itinerary list wholesale. Indices
// into a previous list become invalid.
func (s *Session) SetItineraries(itins []models.Itinerary) {
	s.itineraries = itins
}

// ItineraryAt returns the itinerary at index i from the last search, or
// false when no search ran yet or the index is out of bounds.
func (s *Session) ItineraryAt(i int) (models.Itinerary, bool) {
	if i < 0 || i >= len(s.itineraries) {
		return models.Itinerary{}, false
	}
	return s.itineraries[i], true
}

// Reset clears both the username and the itinerary list, returning the
// session to its just-connected state.
func (s *Session) Reset() {
	s.username = ""
	s.itineraries = nil
}
