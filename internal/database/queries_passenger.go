package database

import (
	"context"
	"fmt"

	"github.com/willfong/airbook/internal/models"
)

// InsertPassenger registers a new passenger. The unique constraint on
// passNum is the duplicate check: a conflict comes back as ErrDuplicate
// rather than being pre-checked with a separate query.
func (q *Queries) InsertPassenger(ctx context.Context, p *models.Passenger) error {
	query := `
		INSERT INTO Passenger (passNum, fullName, bdate, country)
		VALUES (?, ?, ?, ?)`

	_, err := q.pool.ExecContext(ctx, query, p.Passport, p.FullName, p.BirthDate, p.Country)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("passport %s: %w", p.Passport, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert passenger: %w", err)
	}
	return nil
}
