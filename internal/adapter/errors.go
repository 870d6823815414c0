package adapter

import "errors"

var (
	ErrBadRequest             = errors.New("bad request")
	ErrUnauthorized           = errors.New("client unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrInternalServerError    = errors.New("internal server error")
	ErrBadGateway             = errors.New("bad gateway")
	ErrTemporarilyUnavailable = errors.New("server temporarily unavailable")
)

var (
	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
	ErrMissingToken   = errors.New("server response carries no bearer token")
)
