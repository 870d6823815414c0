package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
)

// otpRepository is the PostgreSQL-backed implementation of [OTPRepository].
type otpRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOTPRepository constructs an [OTPRepository] backed by db.
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

func (o *otpRepository) SaveOTP(ctx context.Context, code models.OTPCode) error {
	query, args, err := buildSaveOTPQuery(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = o.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "otpRepository.SaveOTP").
			Str("purpose", string(code.Purpose)).
			Msg("failed to save code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (o *otpRepository) GetOTP(ctx context.Context, email string) (models.OTPCode, error) {
	query, args, err := buildGetOTPQuery(ctx, email)
	if err != nil {
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		code    models.OTPCode
		purpose string
	)
	err = o.db.withRetry(ctx, func() error {
		return o.db.QueryRowContext(ctx, query, args...).
			Scan(&code.Email, &purpose, &code.CodeHash, &code.ExpiresAt, &code.Attempts)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.OTPCode{}, ErrOTPNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "otpRepository.GetOTP").Msg("failed to get code")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	code.Purpose = models.OTPPurpose(purpose)
	return code, nil
}

func (o *otpRepository) RecordOTPAttempt(ctx context.Context, email string) (int, error) {
	query, args, err := buildRecordOTPAttemptQuery(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var attempts int
	err = o.db.QueryRowContext(ctx, query, args...).Scan(&attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrOTPNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "otpRepository.RecordOTPAttempt").Msg("failed to count attempt")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return attempts, nil
}

func (o *otpRepository) DeleteOTP(ctx context.Context, email string) error {
	query, args, err := buildDeleteOTPQuery(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = o.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "otpRepository.DeleteOTP").Msg("failed to delete code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
