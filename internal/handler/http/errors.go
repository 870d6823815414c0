// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-lockr/internal/app"
)

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no user id in request context")

	// ErrAccessDenied is returned when the path user differs from the token
	// user.
	ErrAccessDenied = errors.New(app.MsgAccessDenied)

	// ErrInvalidPathParam is returned for a malformed user id in the path.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header is
	// missing or does not match the body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
