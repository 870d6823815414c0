package store

import (
	"context"

	"github.com/MKhiriev/go-lockr/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository caches the logged-in session on the client so that
// one-shot commands can reuse the token.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}

// LocalSettingsRepository caches user settings, including the passcode
// verifier, so the vault can be unlocked offline.
type LocalSettingsRepository interface {
	SaveSettings(ctx context.Context, userID int64, settings models.UserSettings) error
	LoadSettings(ctx context.Context, userID int64) (models.UserSettings, error)
}
