// Package database provides the store gateway for the airbook console.
//
// FILE: queries.go
// PURPOSE: Base Queries struct and constructor. This is the entry point for
// all statements the console issues against the store.
//
// RELATED FILES:
// - queries_passenger.go: Passenger registration
// - queries_booking.go: Booking creation and seat availability
// - queries_rating.go: Rating guard and insert
// - queries_flight.go: Flight reporting queries
// - scanners.go: Row scanning helper functions
// - errors.go: Constraint-violation detection and sentinel errors
package database

// Queries provides the statements for each console operation
type Queries struct {
	pool *Pool
}

// NewQueries creates a new Queries instance
func NewQueries(pool *Pool) *Queries {
	return &Queries{pool: pool}
}
