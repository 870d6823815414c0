package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidOTP  = errors.New("invalid or expired code")
	ErrOTPDelivery = errors.New("code delivery failed")
)

// Client-side errors.
var (
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrSessionExpired     = errors.New("session expired, please log in again")
	ErrAccessDenied       = errors.New("access denied")
	ErrFieldNotFound      = errors.New("custom field was not found")
	ErrPasscodeAlreadySet = errors.New("passcode is already set")
	ErrServerUnavailable  = errors.New("server is unavailable")
)
