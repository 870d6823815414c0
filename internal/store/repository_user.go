package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Settings live as columns of the "users" row.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser implements [UserRepository]. A unique_violation on email is
// reported as [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&u.UserID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt,
			&u.Settings.BiometricEnabled, &u.Settings.AutoLockTimer,
			&u.Settings.HasCompletedOnboarding, &u.Settings.MasterPasscodeHash,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to find user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return u, nil
}

// GetSettings implements [UserRepository].
func (r *userRepository) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.UserSettings
	err = r.db.withRetry(ctx, func() error {
		return scanSettings(r.db.QueryRowContext(ctx, query, args...), &s)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserSettings{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetSettings").Int64("user_id", userID).Msg("failed to get settings")
		return models.UserSettings{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return s, nil
}

// UpdateSettings implements [UserRepository]. The whole settings record is
// written; partial updates are merged by the service.
func (r *userRepository) UpdateSettings(ctx context.Context, userID int64, settings models.UserSettings) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSettingsQuery(ctx, userID, settings)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.UserSettings
	err = scanSettings(r.db.QueryRowContext(ctx, query, args...), &s)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserSettings{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateSettings").Int64("user_id", userID).Msg("failed to update settings")
		return models.UserSettings{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSettings(row rowScanner, s *models.UserSettings) error {
	return row.Scan(&s.BiometricEnabled, &s.AutoLockTimer, &s.HasCompletedOnboarding, &s.MasterPasscodeHash)
}
