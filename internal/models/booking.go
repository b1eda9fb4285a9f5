package models

// Booking represents a row in the Booking table.
// Departure is stored as a month/day/year string, matching Passenger.BirthDate.
// PassengerID is carried as entered; the store coerces and enforces it
// against the Passenger table.
type Booking struct {
	Reference   string
	Departure   string
	FlightNum   string
	PassengerID string
}

// SeatReport is one row of the available-seats report for a flight
// on a given departure date.
type SeatReport struct {
	FlightNum string
	Departure string
	Total     int
	Booked    int
	Available int
}
