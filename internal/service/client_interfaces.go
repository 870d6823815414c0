package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lockr/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

// ClientAuthService handles the account side of the client: registration,
// login and the cached local session.
type ClientAuthService interface {
	// Register creates the account on the server and persists the returned
	// token locally.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the server and persists the token locally.
	Login(ctx context.Context, user models.User) (models.User, error)

	// RestoreSession loads the cached token and hands it to the adapter.
	// Returns store.ErrLocalSessionNotFound when nobody is logged in and
	// ErrSessionExpired when the cached token expired.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Logout locks the vault and forgets the local session.
	Logout(ctx context.Context) error
}

// ClientVaultService is the client's view of the vault. It keeps a decrypted
// copy of every entry while the session is unlocked, and sends only vault
// envelopes to the server.
type ClientVaultService interface {
	// Refresh reloads settings, categories and entries from the server.
	// Default categories are seeded for accounts that have none.
	Refresh(ctx context.Context) error

	Settings() models.UserSettings
	HasPasscode() bool

	// CreatePasscode sets the first passcode, stores its verifier and unlocks.
	CreatePasscode(ctx context.Context, passcode string) error
	Unlock(ctx context.Context, passcode string) error
	// RequestPasscodeReset mails a one-time code to the logged-in account.
	RequestPasscodeReset(ctx context.Context) error
	// ResetPasscode replaces a forgotten passcode once code checks out and
	// unlocks with the new one. Entries sealed under the old passcode stay
	// as they are and show up undecrypted.
	ResetPasscode(ctx context.Context, code, passcode string) error
	Lock()
	Locked() bool

	Entries() []models.Entry
	Entry(id string) (models.Entry, error)
	EntriesByCategory(categoryID string) []models.Entry
	// Search matches title, username and notes, ignoring case.
	Search(query string) []models.Entry

	// AddEntry encrypts and uploads entry and returns the plaintext copy
	// with server-assigned ids.
	AddEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	// SetCustomFieldEncrypted flips a custom field's flag and re-uploads the
	// entry so the stored value follows the flag immediately.
	SetCustomFieldEncrypted(ctx context.Context, entryID, fieldID string, encrypted bool) (models.Entry, error)

	Categories() []models.Category
	AddCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	// DeleteCategory removes the category and its entries.
	DeleteCategory(ctx context.Context, id string) error

	Health(now time.Time) (models.HealthReport, error)
	UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.UserSettings, error)
}

// LockJob periodically locks an idle session.
type LockJob interface {
	// Start launches the ticker goroutine. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
