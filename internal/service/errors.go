package service

import "errors"

// Sentinel errors returned by the service layer. The HTTP layer maps each of
// these to a status code; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when request data fails validation
	// before any repository call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the account does not
	// exist or the password does not match. Both cases collapse into this one
	// error so responses never reveal which usernames are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when the account is resolved and the
	// credentials check out, but the account has been deactivated.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrInsufficientPermissions is returned when an authenticated principal
	// attempts an operation outside its role or ownership.
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	// ErrSelfDeletion is returned when an administrator attempts to delete
	// their own account.
	ErrSelfDeletion = errors.New("administrators cannot delete their own account")

	// ErrTokenCreationFailed wraps failures while signing a new token.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
