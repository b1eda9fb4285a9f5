package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors for business-rule violations detected at the store.
// Callers branch on these with errors.Is and turn them into user-facing
// messages; everything else is a store error and aborts the operation.
var (
	// ErrDuplicate signals a unique-constraint conflict: an existing
	// passport number, booking reference, or (passenger, flight) rating.
	ErrDuplicate = errors.New("duplicate row")

	// ErrNoBooking signals a rating submitted for a (passenger, flight)
	// pair with no matching booking.
	ErrNoBooking = errors.New("no booking found")

	// ErrForeignKey signals an insert referencing a flight or passenger
	// that does not exist.
	ErrForeignKey = errors.New("unknown flight or passenger")
)

// MySQL/MariaDB server error numbers for constraint violations.
const (
	mysqlErrDupEntry         = 1062
	mysqlErrNoReferencedRow  = 1216
	mysqlErrNoReferencedRow2 = 1452
)

// isDuplicateKey reports whether err is a unique-constraint violation.
// This is how check-then-insert races collapse into a single optimistic
// insert: the constraint itself is the uniqueness check.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDupEntry
	}
	return false
}

// isForeignKeyViolation reports whether err is a referential-integrity
// violation against a parent row.
func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrNoReferencedRow || mysqlErr.Number == mysqlErrNoReferencedRow2
	}
	return false
}
