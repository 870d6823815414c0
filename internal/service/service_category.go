package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
)

type categoryService struct {
	categories store.CategoryRepository
	ids        *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (c *categoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := c.categories.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create assigns a fresh id and a zero entry count.
func (c *categoryService) Create(ctx context.Context, category models.Category) (models.Category, error) {
	category.ID = c.ids.Generate()
	category.EntryCount = 0

	created, err := c.categories.Create(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("category_id", created.ID).Msg("category created")
	return created, nil
}

// Update renames or restyles a category. The entry count is owned by the
// server and comes back from the store.
func (c *categoryService) Update(ctx context.Context, category models.Category) (models.Category, error) {
	updated, err := c.categories.Update(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

// Delete removes the category together with its entries.
func (c *categoryService) Delete(ctx context.Context, id string, userID int64) error {
	if err := c.categories.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("category_id", id).Msg("category deleted")
	return nil
}
