package models

// Airline represents a row in the Airline table. Read-only reference data.
type Airline struct {
	ID   int64
	Name string
}

// Flight represents a row in the Flight table. Read-only reference data.
type Flight struct {
	FlightNum   string
	Origin      string
	Destination string
	Plane       string
	Duration    int
	Seats       int
	AirlineID   int64
}

// DestinationCount is one row of the most-popular-destinations report.
type DestinationCount struct {
	Destination string
	Flights     int
}

// RouteRating is one row of the highest-rated-routes report.
type RouteRating struct {
	Airline     string
	FlightNum   string
	Origin      string
	Destination string
	Plane       string
	AvgScore    float64
}

// RouteDuration is one row of the flights-by-duration report.
type RouteDuration struct {
	Airline     string
	FlightNum   string
	Origin      string
	Destination string
	Duration    int
	Plane       string
}
