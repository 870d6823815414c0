package store

import (
	"context"

	"github.com/MKhiriev/go-lockr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their settings.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken email yields ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID int64, settings models.UserSettings) (models.UserSettings, error)
}

// OTPRepository keeps at most one pending one-time code per email.
type OTPRepository interface {
	// SaveOTP stores code, replacing any pending code for the same email.
	SaveOTP(ctx context.Context, code models.OTPCode) error
	// GetOTP returns the pending code or ErrOTPNotFound.
	GetOTP(ctx context.Context, email string) (models.OTPCode, error)
	// RecordOTPAttempt counts a failed verification and returns the new total.
	RecordOTPAttempt(ctx context.Context, email string) (int, error)
	DeleteOTP(ctx context.Context, email string) error
}

// CategoryRepository persists vault categories. Every method is scoped to
// the owning user.
type CategoryRepository interface {
	List(ctx context.Context, userID int64) ([]models.Category, error)
	Get(ctx context.Context, id string, userID int64) (models.Category, error)
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Update(ctx context.Context, category models.Category) (models.Category, error)
	// Delete removes the category and all of its entries in one transaction.
	Delete(ctx context.Context, id string, userID int64) error
}

// EntryRepository persists vault entries. Sensitive columns hold whatever
// the service hands over; the repository never interprets them.
type EntryRepository interface {
	List(ctx context.Context, userID int64) ([]models.Entry, error)
	Get(ctx context.Context, id string, userID int64) (models.Entry, error)
	// Create, Update and Delete keep the category entry counts in step with
	// the entries table inside one transaction.
	Create(ctx context.Context, entry models.Entry) (models.Entry, error)
	Update(ctx context.Context, entry models.Entry, fromCategoryID string) (models.Entry, error)
	Delete(ctx context.Context, id string, userID int64) error
}
