package models

import "fmt"

// Flight is a row of the externally-owned flight catalog. The booking core
// never mutates flights; it only reads and aggregates them.
type Flight struct {
	FID        int
	DayOfMonth int
	CarrierID  string
	FlightNum  string
	OriginCity string
	DestCity   string
	Time       int // flight duration, minutes
	Capacity   int
	Price      int
}

func (f Flight) String() string {
	return fmt.Sprintf("ID: %d Day: %d Carrier: %s Number: %s Origin: %s Dest: %s Duration: %d Capacity: %d Price: %d",
		f.FID, f.DayOfMonth, f.CarrierID, f.FlightNum, f.OriginCity, f.DestCity, f.Time, f.Capacity, f.Price)
}
