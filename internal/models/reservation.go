package models

// Reservation is a persisted booking record for one itinerary, paid or not.
// SecondFlightID is nil for direct itineraries. IDs are sequential per store.
type Reservation struct {
	ID             int
	Username       string
	Paid           bool
	TotalPrice     int
	FirstFlightID  int
	SecondFlightID *int
}
