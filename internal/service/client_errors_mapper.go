// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lockr/internal/adapter"
	"github.com/MKhiriev/go-lockr/internal/app"
	"github.com/MKhiriev/go-lockr/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server message is kept in the chain for display.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if strings.Contains(msg, ErrInvalidOTP.Error()) {
			return ErrInvalidOTP
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidEmailPassword {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.Contains(msg, store.ErrEntryNotFound.Error()):
			return store.ErrEntryNotFound
		case strings.Contains(msg, store.ErrCategoryNotFound.Error()):
			return store.ErrCategoryNotFound
		case strings.Contains(msg, store.ErrNoUserWasFound.Error()):
			return store.ErrNoUserWasFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if strings.Contains(msg, store.ErrLoginAlreadyExists.Error()) {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrTemporarilyUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if _, body, ok := strings.Cut(msg, ": "); ok {
		return body
	}
	return msg
}
