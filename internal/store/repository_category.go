package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *categoryRepository) List(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCategoriesQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.Category
	err = c.withRetry(ctx, func() error {
		var qErr error
		results, qErr = c.queryCategories(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.List").
			Int64("user_id", userID).
			Msg("failed to list categories")
		return nil, err
	}

	return results, nil
}

func (c *categoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Category, 0, 8)
	for rows.Next() {
		var item models.Category
		if err = scanCategory(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (c *categoryRepository) Get(ctx context.Context, id string, userID int64) (models.Category, error) {
	query, args, err := buildGetCategoryQuery(ctx, id, userID)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Category
	err = scanCategory(c.DB.QueryRowContext(ctx, query, args...), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.Get").
			Str("category_id", id).
			Msg("failed to get category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (c *categoryRepository) Create(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := buildCreateCategoryQuery(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.Create").
			Int64("user_id", category.UserID).
			Msg("failed to insert category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

func (c *categoryRepository) Update(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := buildUpdateCategoryQuery(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&category.EntryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.Update").
			Str("category_id", category.ID).
			Msg("failed to update category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

// Delete removes the category's entries first so the two tables never
// disagree, even without the FK cascade.
func (c *categoryRepository) Delete(ctx context.Context, id string, userID int64) error {
	log := logger.FromContext(ctx)

	entriesQuery, entriesArgs, err := buildDeleteCategoryEntriesQuery(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	categoryQuery, categoryArgs, err := buildDeleteCategoryQuery(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, entriesQuery, entriesArgs...); err != nil {
		log.Err(err).Str("func", "categoryRepository.Delete").Str("category_id", id).Msg("failed to delete category entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, categoryQuery, categoryArgs...)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.Delete").Str("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "categoryRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// incrementEntryCount adds delta to the cached entry count of a category,
// never going below zero. ex is usually the transaction that wrote the entry.
func incrementEntryCount(ctx context.Context, ex execer, id string, userID int64, delta int) error {
	query, args, err := buildIncrementEntryCountQuery(ctx, id, userID, delta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "incrementEntryCount").
			Str("category_id", id).
			Int("delta", delta).
			Msg("failed to update entry count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func scanCategory(row rowScanner, c *models.Category) error {
	return row.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.EntryCount)
}
