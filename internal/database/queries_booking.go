package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/willfong/airbook/internal/models"
)

// InsertBooking creates a reservation row. The unique constraint on
// bookRef doubles as the reference-collision check: the caller retries
// with a fresh reference when ErrDuplicate comes back. Referential
// integrity against Flight and Passenger is left to the store's foreign
// keys, surfaced as ErrForeignKey.
func (q *Queries) InsertBooking(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO Booking (bookRef, departure, flightNum, pID)
		VALUES (?, ?, ?, ?)`

	_, err := q.pool.ExecContext(ctx, query, b.Reference, b.Departure, b.FlightNum, b.PassengerID)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("reference %s: %w", b.Reference, ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("booking %s: %w", b.Reference, ErrForeignKey)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// AvailableSeats reports total, booked and remaining seats for a flight
// on a departure date. Returns nil when no bookings exist for the
// flight/date pair, which is all the store can say without a booking row
// to anchor the join.
func (q *Queries) AvailableSeats(ctx context.Context, flightNum, departure string) (*models.SeatReport, error) {
	query := `
		SELECT F.flightNum, B.departure, F.seats,
			COUNT(B.bookRef) AS booked,
			F.seats - COUNT(B.bookRef) AS available
		FROM Flight F
		JOIN Booking B ON B.flightNum = F.flightNum
		WHERE F.flightNum = ? AND B.departure = ?
		GROUP BY B.departure, F.flightNum, F.seats`

	row := q.pool.QueryRowContext(ctx, query, flightNum, departure)

	var r models.SeatReport
	err := row.Scan(&r.FlightNum, &r.Departure, &r.Total, &r.Booked, &r.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query seat availability: %w", err)
	}
	return &r, nil
}
