package models

// Rating represents a row in the Ratings table. At most one rating
// exists per (passenger, flight) pair.
type Rating struct {
	PassengerID string
	FlightNum   string
	Score       int
	Comment     string
}
