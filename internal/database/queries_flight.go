package database

import (
	"context"
	"fmt"

	"github.com/willfong/airbook/internal/models"
)

// FlightsBetween lists all flights with an exact origin/destination match
func (q *Queries) FlightsBetween(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	query := `
		SELECT F.flightNum, F.origin, F.destination, F.plane, F.duration
		FROM Flight F
		WHERE F.origin = ? AND F.destination = ?`

	rows, err := q.pool.QueryContext(ctx, query, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		f, err := scanFlightRoute(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

// PopularDestinations lists the k destinations served by the most flights
func (q *Queries) PopularDestinations(ctx context.Context, k int) ([]models.DestinationCount, error) {
	query := `
		SELECT F.destination, COUNT(F.destination) AS choices
		FROM Flight F
		GROUP BY F.destination
		ORDER BY COUNT(F.destination) DESC
		LIMIT ?`

	rows, err := q.pool.QueryContext(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	var results []models.DestinationCount
	for rows.Next() {
		var d models.DestinationCount
		if err := rows.Scan(&d.Destination, &d.Flights); err != nil {
			return nil, err
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// HighestRatedRoutes lists the k routes with the best average review score
func (q *Queries) HighestRatedRoutes(ctx context.Context, k int) ([]models.RouteRating, error) {
	query := `
		SELECT A.name, F.flightNum, F.origin, F.destination, F.plane,
			AVG(R.score) AS avgScore
		FROM Airline A
		JOIN Flight F ON A.airId = F.airId
		JOIN Ratings R ON F.flightNum = R.flightNum
		GROUP BY F.destination, A.name, F.flightNum, F.origin, F.plane
		ORDER BY avgScore DESC
		LIMIT ?`

	rows, err := q.pool.QueryContext(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("failed to query route ratings: %w", err)
	}
	defer rows.Close()

	var results []models.RouteRating
	for rows.Next() {
		r, err := scanRouteRating(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

// FlightsByDuration lists up to k flights on a route, longest first
func (q *Queries) FlightsByDuration(ctx context.Context, origin, destination string, k int) ([]models.RouteDuration, error) {
	query := `
		SELECT A.name, F.flightNum, F.origin, F.destination, F.duration, F.plane
		FROM Airline A
		JOIN Flight F ON A.airId = F.airId
		WHERE F.origin = ? AND F.destination = ?
		ORDER BY F.duration DESC
		LIMIT ?`

	rows, err := q.pool.QueryContext(ctx, query, origin, destination, k)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights by duration: %w", err)
	}
	defer rows.Close()

	var results []models.RouteDuration
	for rows.Next() {
		r, err := scanRouteDuration(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}
