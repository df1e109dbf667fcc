package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
	// configured version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrTokenCreationFailed wraps failures of JWT signing.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any token that fails
	// verification or whose session is no longer live.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInactiveUser is returned when an inactive user tries to log in.
	ErrInactiveUser = errors.New("user is inactive")

	// ErrPasswordHashing wraps bcrypt failures.
	ErrPasswordHashing = errors.New("password hashing failed")
)

// Request errors reported by the user and post services before any write.
var (
	// ErrSearchTooShort is returned when a non-empty search term is shorter
	// than [MinSearchLength] characters.
	ErrSearchTooShort = errors.New("search term is too short")

	// ErrInvalidUserFilter is returned when the owner filter of the post list
	// is not a valid identifier.
	ErrInvalidUserFilter = errors.New("invalid user filter")

	// ErrNoFieldsToUpdate is returned when an update carries no recognized
	// field.
	ErrNoFieldsToUpdate = errors.New("no recognized fields to update")

	// ErrInvalidUserType is returned when an update sets user_type outside
	// of {admin, user}.
	ErrInvalidUserType = errors.New("invalid user type")

	// ErrInvalidStatus is returned when an update sets status outside of
	// {active, inactive}.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidIsPublished is returned when an update sets is_published
	// outside of {active, inactive}.
	ErrInvalidIsPublished = errors.New("invalid is_published")
)
