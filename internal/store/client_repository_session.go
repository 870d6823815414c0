package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] on the
// client SQLite cache.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession replaces the cached session.
func (l *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	query, args, err := buildSaveLocalSessionQuery(ctx, session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns [ErrLocalSessionNotFound] when nobody is logged in.
func (l *localSessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	query, args, err := buildLoadLocalSessionQuery(ctx)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.LocalSession
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Email, &s.Token, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to load local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

// ClearSession forgets the cached session. Clearing an empty cache is not
// an error.
func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := buildClearLocalSessionQuery(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.ClearSession").
			Msg("failed to clear local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
