package service

import (
	"context"

	"github.com/MKhiriev/go-lockr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// AuthService registers and authenticates accounts and issues session
// tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OTPService issues six digit one-time codes and checks them.
type OTPService interface {
	SendOTP(ctx context.Context, req models.OTPRequest) error
	// VerifyOTP consumes a matching code and returns the account it was
	// sent to.
	VerifyOTP(ctx context.Context, req models.OTPVerification) (models.User, error)
}

// OTPSender delivers a code to an email address.
type OTPSender interface {
	SendOTP(ctx context.Context, email, code string) error
}

// SettingsService reads and partially updates per-user settings.
type SettingsService interface {
	Get(ctx context.Context, userID int64) (models.UserSettings, error)
	Update(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error)
}

// CategoryService manages vault categories.
type CategoryService interface {
	List(ctx context.Context, userID int64) ([]models.Category, error)
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Update(ctx context.Context, category models.Category) (models.Category, error)
	Delete(ctx context.Context, id string, userID int64) error
}

// EntryService manages vault entries. Sensitive fields arrive already
// vault-encrypted; the service adds the at-rest transport layer.
type EntryService interface {
	List(ctx context.Context, userID int64) ([]models.Entry, error)
	Create(ctx context.Context, entry models.Entry) (models.Entry, error)
	Update(ctx context.Context, entry models.Entry) (models.Entry, error)
	Delete(ctx context.Context, id string, userID int64) error
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}

// CategoryServiceWrapper is the CategoryService counterpart of
// EntryServiceWrapper.
type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}
