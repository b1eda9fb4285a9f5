// Package models defines the row structs for the airbook schema.
package models

// Passenger represents a row in the Passenger table.
// BirthDate is stored as a month/day/year string (e.g. "5/17/1990").
type Passenger struct {
	Passport  string
	FullName  string
	BirthDate string
	Country   string
}
