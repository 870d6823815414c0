package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. Custom fields and tags are JSONB columns.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func (e *entryRepository) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.Entry
	err = e.withRetry(ctx, func() error {
		var qErr error
		results, qErr = e.queryEntries(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.List").
			Int64("user_id", userID).
			Msg("failed to list entries")
		return nil, err
	}

	return results, nil
}

func (e *entryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Entry, 0, 50)
	for rows.Next() {
		var item models.Entry
		if err = scanEntry(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (e *entryRepository) Get(ctx context.Context, id string, userID int64) (models.Entry, error) {
	query, args, err := buildGetEntryQuery(ctx, id, userID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Entry
	err = scanEntry(e.DB.QueryRowContext(ctx, query, args...), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.Get").
			Str("entry_id", id).
			Msg("failed to get entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Create inserts the entry and bumps the entry count of its category in one
// transaction.
func (e *entryRepository) Create(ctx context.Context, entry models.Entry) (models.Entry, error) {
	query, args, err := buildCreateEntryQuery(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = e.inTx(ctx, "entryRepository.Create", func(tx *sql.Tx) error {
		if _, txErr := tx.ExecContext(ctx, query, args...); txErr != nil {
			logger.FromContext(ctx).Err(txErr).
				Str("func", "entryRepository.Create").
				Int64("user_id", entry.UserID).
				Str("entry_id", entry.ID).
				Msg("failed to insert entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}
		return incrementEntryCount(ctx, tx, entry.CategoryID, entry.UserID, 1)
	})
	if err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

// Update replaces the entry. When fromCategoryID differs from the entry's
// category, one unit of entry count moves along in the same transaction.
func (e *entryRepository) Update(ctx context.Context, entry models.Entry, fromCategoryID string) (models.Entry, error) {
	query, args, err := buildUpdateEntryQuery(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = e.inTx(ctx, "entryRepository.Update", func(tx *sql.Tx) error {
		txErr := tx.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt)
		if errors.Is(txErr, sql.ErrNoRows) {
			return ErrEntryNotFound
		}
		if txErr != nil {
			logger.FromContext(ctx).Err(txErr).
				Str("func", "entryRepository.Update").
				Str("entry_id", entry.ID).
				Msg("failed to update entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}

		if fromCategoryID == "" || fromCategoryID == entry.CategoryID {
			return nil
		}
		if txErr = incrementEntryCount(ctx, tx, fromCategoryID, entry.UserID, -1); txErr != nil {
			return txErr
		}
		return incrementEntryCount(ctx, tx, entry.CategoryID, entry.UserID, 1)
	})
	if err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

// Delete removes the entry and decrements the count of the category it
// belonged to in one transaction.
func (e *entryRepository) Delete(ctx context.Context, id string, userID int64) error {
	query, args, err := buildDeleteEntryQuery(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return e.inTx(ctx, "entryRepository.Delete", func(tx *sql.Tx) error {
		var categoryID string
		txErr := tx.QueryRowContext(ctx, query, args...).Scan(&categoryID)
		if errors.Is(txErr, sql.ErrNoRows) {
			return ErrEntryNotFound
		}
		if txErr != nil {
			logger.FromContext(ctx).Err(txErr).
				Str("func", "entryRepository.Delete").
				Str("entry_id", id).
				Msg("failed to delete entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}
		return incrementEntryCount(ctx, tx, categoryID, userID, -1)
	})
}

// inTx runs fn inside a transaction and commits only if fn succeeds.
func (e *entryRepository) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func scanEntry(row rowScanner, e *models.Entry) error {
	return row.Scan(
		&e.ID,
		&e.UserID,
		&e.CategoryID,
		&e.Title,
		&e.Username,
		&e.Password,
		&e.Notes,
		&e.CustomFields,
		&e.Tags,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}
