package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the given identifier
	// or email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when no post matches the given identifier.
	ErrPostNotFound = errors.New("post was not found")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE violates the
	// unique index on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an INSERT or UPDATE violates
	// the unique index on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrTitleAlreadyExists is returned when an INSERT or UPDATE violates the
	// unique index on posts.title.
	ErrTitleAlreadyExists = errors.New("title already exists")

	// ErrSessionNotFound is returned by a [SessionCache] on a cache miss.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrValueTooLong is returned when a value does not fit its column.
	ErrValueTooLong = errors.New("value is too long")

	// ErrNothingToUpdate is returned when an update carries no field.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCacheUnavailable is returned when the session cache cannot be
	// reached.
	ErrCacheUnavailable = errors.New("session cache is unavailable")
)
