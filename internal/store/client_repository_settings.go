package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
)

type localSettingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSettingsRepository constructs a [LocalSettingsRepository] on the
// client SQLite cache.
func NewLocalSettingsRepository(db *DB, logger *logger.Logger) LocalSettingsRepository {
	return &localSettingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSettingsRepository) SaveSettings(ctx context.Context, userID int64, settings models.UserSettings) error {
	query, args, err := buildSaveLocalSettingsQuery(ctx, userID, settings)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSettingsRepository.SaveSettings").
			Int64("user_id", userID).
			Msg("failed to cache settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localSettingsRepository) LoadSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	query, args, err := buildLoadLocalSettingsQuery(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.UserSettings
	err = scanSettings(l.DB.QueryRowContext(ctx, query, args...), &s)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserSettings{}, ErrLocalSettingsNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSettingsRepository.LoadSettings").
			Int64("user_id", userID).
			Msg("failed to load cached settings")
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}
