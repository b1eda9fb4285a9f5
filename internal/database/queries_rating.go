package database

import (
	"context"
	"fmt"

	"github.com/willfong/airbook/internal/models"
)

// InsertRating records a customer review. The booking-existence guard
// and the insert run inside one transaction so a concurrent writer
// cannot slip between the check and the insert. Duplicate ratings are
// caught by the (pID, flightNum) unique constraint, not a second guard
// query.
func (q *Queries) InsertRating(ctx context.Context, r *models.Rating) error {
	tx, err := q.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var bookings int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Booking WHERE pID = ? AND flightNum = ?`,
		r.PassengerID, r.FlightNum,
	).Scan(&bookings)
	if err != nil {
		return fmt.Errorf("failed to check bookings: %w", err)
	}
	if bookings == 0 {
		return fmt.Errorf("passenger %s on flight %s: %w", r.PassengerID, r.FlightNum, ErrNoBooking)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO Ratings (pID, flightNum, score, comment) VALUES (?, ?, ?, ?)`,
		r.PassengerID, r.FlightNum, r.Score, r.Comment,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("passenger %s on flight %s: %w", r.PassengerID, r.FlightNum, ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("rating: %w", ErrForeignKey)
		}
		return fmt.Errorf("failed to insert rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rating: %w", err)
	}
	return nil
}
