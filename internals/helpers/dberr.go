package helper

import (
	"errors"

	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// sqlStateErr matches the pgx driver's *pgconn.PgError without importing it.
type sqlStateErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error, so
// controllers can map races on unique columns to 409 instead of 500. The
// gorm postgres driver surfaces these through pgx (SQLState); lib/pq errors
// are matched too.
func IsUniqueViolation(err error) bool {
	var stateErr sqlStateErr
	if errors.As(err, &stateErr) {
		return stateErr.SQLState() == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
