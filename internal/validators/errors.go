package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidID          = errors.New("invalid id")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyCategory      = errors.New("category is required")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyIcon          = errors.New("icon is required")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyFieldName     = errors.New("custom field name is required")
	ErrInvalidAutoLock    = errors.New("auto-lock timer must not be negative")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrInvalidPasscodeRef = errors.New("passcode verifier must not be empty")
)
