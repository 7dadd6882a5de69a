package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/dax-daily/internal/store"
)

// SQLSTATE codes for the integrity violations the schema can raise.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

type violation struct {
	sentinel error
	label    string
	// column reports the offending column instead of the constraint name.
	column bool
}

var violations = map[string]violation{
	uniqueViolationCode:     {sentinel: store.ErrDuplicate, label: "unique violation"},
	foreignKeyViolationCode: {sentinel: store.ErrInvalidEntity, label: "foreign key violation"},
	checkViolationCode:      {sentinel: store.ErrInvalidEntity, label: "check constraint violation"},
	notNullViolationCode:    {sentinel: store.ErrInvalidEntity, label: "not null violation", column: true},
}

// MapError translates sql.ErrNoRows and integrity violations into store
// sentinels. The original error text is kept in the message; anything
// else is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	v, ok := violations[pgErr.Code]
	if !ok {
		return err
	}

	name := pgErr.ConstraintName
	if v.column {
		name = pgErr.ColumnName
	}
	return fmt.Errorf("%w: %s (%s): %v", v.sentinel, v.label, name, err)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolationCode)
}

// IsCheckConstraintViolation reports whether err is a check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	return hasCode(err, checkViolationCode)
}
