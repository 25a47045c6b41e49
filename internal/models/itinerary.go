package models

import "fmt"

// Itinerary is a session-scoped, ephemeral view over one or two catalog
// flights treated as a single bookable unit. Itineraries are indexed 0..N-1
// within one search result; the indexing is only valid until the next search
// replaces it.
type Itinerary struct {
	First         Flight
	Second        *Flight // nil for direct itineraries
	TotalDuration int
}

// NewDirectItinerary builds a one-leg itinerary.
func NewDirectItinerary(f Flight) Itinerary {
	return Itinerary{First: f, TotalDuration: f.Time}
}

// NewConnectingItinerary builds a two-leg itinerary; f1's destination is
// expected to be f2's origin.
func NewConnectingItinerary(f1, f2 Flight) Itinerary {
	return Itinerary{First: f1, Second: &f2, TotalDuration: f1.Time + f2.Time}
}

// Direct reports whether the itinerary has a single leg.
func (i Itinerary) Direct() bool {
	return i.Second == nil
}

// Less orders itineraries by total duration ascending, then first flight id,
// then (only when both are two-hop) second flight id. Itineraries equal on
// all keys compare as equivalent.
func (i Itinerary) Less(o Itinerary) bool {
	if i.TotalDuration != o.TotalDuration {
		return i.TotalDuration < o.TotalDuration
	}
	if i.First.FID != o.First.FID {
		return i.First.FID < o.First.FID
	}
	if i.Second != nil && o.Second != nil {
		return i.Second.FID < o.Second.FID
	}
	return false
}

func (i Itinerary) String() string {
	if i.Direct() {
		return fmt.Sprintf("1 flight(s), %d minutes\n%s", i.TotalDuration, i.First)
	}
	return fmt.Sprintf("2 flight(s), %d minutes\n%s\n%s", i.TotalDuration, i.First, *i.Second)
}
