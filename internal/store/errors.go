package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because the email is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCategoryNotFound is returned when a category does not exist or is
	// owned by another user.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrEntryNotFound is returned when an entry does not exist or is owned by
	// another user.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrOTPNotFound is returned when no code is pending for an email.
	ErrOTPNotFound = errors.New("no pending code")

	// ErrLocalSessionNotFound is returned by the client cache when nobody is
	// logged in on this machine.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrLocalSettingsNotFound is returned when no settings were cached for
	// the user yet.
	ErrLocalSettingsNotFound = errors.New("local settings not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
