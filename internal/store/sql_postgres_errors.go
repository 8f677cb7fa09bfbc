package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names declared by the migrations. Constraint-level
// disambiguation is what lets a raced insert report the correct duplicate
// field even when the pre-insert existence check passed.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
	constraintItemsOwnerFK  = "items_owner_id_fkey"
)

// postgresError extracts the PostgreSQL error code from err, or returns an
// empty string when err does not wrap a *pgconn.PgError.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// domainConstraintError maps driver-level constraint violations to the
// repository's sentinel errors:
//   - unique_violation (23505) on users.email    → ErrEmailAlreadyExists
//   - unique_violation (23505) on users.username → ErrUsernameAlreadyExists
//   - foreign_key_violation (23503) on items.owner_id → ErrUserNotFound
//
// Returns nil when err carries no recognised constraint violation; callers
// then fall back to their generic error path.
func domainConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return ErrEmailAlreadyExists
		case constraintUsersUsername:
			return ErrUsernameAlreadyExists
		}
	case pgerrcode.ForeignKeyViolation:
		if pgErr.ConstraintName == constraintItemsOwnerFK {
			return ErrUserNotFound
		}
	}

	return nil
}
