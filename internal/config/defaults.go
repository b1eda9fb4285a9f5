// Package config contains compile-time defaults for the airbook console.
// Edit these values and recompile to tune behavior.
package config

import "time"

// Database connection defaults
const (
	// DBHost is the default database host
	DBHost = "127.0.0.1"

	// DBPort is the default database port
	DBPort = "3306"

	// DBDriver is the database/sql driver name
	DBDriver = "mysql"
)

// Connection pool defaults. The console is single-user and issues one
// statement at a time, so the pool stays small.
const (
	DBMaxOpenConns    = 4
	DBMaxIdleConns    = 2
	DBConnMaxLifetime = 5 * time.Minute
	DBConnMaxIdleTime = 1 * time.Minute
)

// Workflow defaults
const (
	// BookingRefLength is the length of generated booking references
	BookingRefLength = 10

	// BookingRefMaxAttempts bounds reference regeneration when the
	// store keeps reporting duplicate-key conflicts. Collisions are
	// ~36^-10 per draw; hitting this cap means something else is wrong.
	BookingRefMaxAttempts = 25

	// ConnectTimeout is the startup ping deadline
	ConnectTimeout = 10 * time.Second
)

// Passenger validation bounds
const (
	PassportLength = 10
	BirthYearMin   = 1900
	BirthYearMax   = 2020
)

// Rating score bounds (inclusive)
const (
	ScoreMin = 0
	ScoreMax = 5
)
