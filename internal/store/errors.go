package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update collides
	// with the unique index on users.email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUsernameAlreadyExists is returned when an insert or update collides
	// with the unique index on users.username.
	ErrUsernameAlreadyExists = errors.New("username already taken")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set, or when an item references an
	// owner that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when a query, update, or delete targets an
	// item that does not exist in the database.
	ErrItemNotFound = errors.New("item not found")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
