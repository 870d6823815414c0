// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the lockr server.
//
// [ServerAdapter] mirrors every REST route one to one. The HTTP
// implementation ([NewHTTPServerAdapter]) keeps the bearer token, signs
// request bodies when a hash key is configured and maps status codes to the
// sentinels in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-lockr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the transport-agnostic lockr API as seen by the client.
// Entries crossing it are already vault-encrypted.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates the account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates by email and password and stores the issued token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// SendOTP asks the server to mail a one-time code.
	SendOTP(ctx context.Context, req models.OTPRequest) error

	// VerifyOTP trades a one-time code for a session and stores the issued
	// token.
	VerifyOTP(ctx context.Context, req models.OTPVerification) (models.User, error)

	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error)

	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListEntries(ctx context.Context, userID int64) ([]models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	DeleteEntry(ctx context.Context, entryID string) error

	// GetVersion returns the server build version.
	GetVersion(ctx context.Context) (string, error)
}
