package session

import "errors"

var (
	// ErrWrongPasscode is returned by [Session.Unlock] when the passcode does
	// not match the stored verifier.
	ErrWrongPasscode = errors.New("wrong passcode")

	// ErrNoPasscodeSet is returned by [Session.Unlock] before a passcode was
	// created for the account.
	ErrNoPasscodeSet = errors.New("no passcode set")

	// ErrInvalidPasscode is returned when a new passcode is not made of
	// exactly PasscodeLength digits.
	ErrInvalidPasscode = errors.New("passcode must be 6 digits")

	// ErrLocked is returned by operations that need the passcode while the
	// session is locked.
	ErrLocked = errors.New("vault is locked")
)
