// Package database provides the store gateway for the airbook console.
//
// FILE: scanners.go
// PURPOSE: Row scanning helper functions for converting result rows to
// model structs.
package database

import (
	"database/sql"

	"github.com/willfong/airbook/internal/models"
)

// scanFlightRoute scans the five route columns selected by FlightsBetween.
// Seats and airline id are not part of that projection.
func scanFlightRoute(rows *sql.Rows) (*models.Flight, error) {
	f := &models.Flight{}
	err := rows.Scan(&f.FlightNum, &f.Origin, &f.Destination, &f.Plane, &f.Duration)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func scanRouteRating(rows *sql.Rows) (*models.RouteRating, error) {
	r := &models.RouteRating{}
	err := rows.Scan(&r.Airline, &r.FlightNum, &r.Origin, &r.Destination, &r.Plane, &r.AvgScore)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanRouteDuration(rows *sql.Rows) (*models.RouteDuration, error) {
	r := &models.RouteDuration{}
	err := rows.Scan(&r.Airline, &r.FlightNum, &r.Origin, &r.Destination, &r.Duration, &r.Plane)
	if err != nil {
		return nil, err
	}
	return r, nil
}
