package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by point lookups and updates that match no row.
var ErrNotFound = errors.New("record not found")

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ConstraintViolation reports the violated constraint when err carries a PostgreSQL unique
// or foreign-key violation.
func ConstraintViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	switch pgErr.Code {
	case pgUniqueViolation, pgForeignKeyViolation:
		return pgErr.ConstraintName, true
	}
	return "", false
}
