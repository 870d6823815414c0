package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/validators"
	"github.com/MKhiriev/go-lockr/models"
)

// entryValidationService is a decorator over EntryService that validates
// input before delegating. It is constructed with Wrap.
type entryValidationService struct {
	inner     EntryService
	validator validators.Validator
	logger    *logger.Logger
}

// NewEntryValidationService returns an EntryServiceWrapper that applies the
// vault validator to every write.
func NewEntryValidationService(logger *logger.Logger) EntryServiceWrapper {
	return &entryValidationService{
		validator: validators.NewVaultValidator(),
		logger:    logger,
	}
}

func (v *entryValidationService) Wrap(inner EntryService) EntryService {
	return &entryValidationService{
		inner:     inner,
		validator: v.validator,
		logger:    v.logger,
	}
}

func (v *entryValidationService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return v.inner.List(ctx, userID)
}

func (v *entryValidationService) Create(ctx context.Context, entry models.Entry) (models.Entry, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("entry rejected")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, entry)
}

func (v *entryValidationService) Update(ctx context.Context, entry models.Entry) (models.Entry, error) {
	if err := v.validator.Validate(ctx, entry, validators.FieldID, validators.FieldUserID, validators.FieldTitle,
		validators.FieldUsername, validators.FieldPassword, validators.FieldCategoryID, validators.FieldCustomFields); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("entry_id", entry.ID).Msg("entry update rejected")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, entry)
}

func (v *entryValidationService) Delete(ctx context.Context, id string, userID int64) error {
	if err := v.validator.Validate(ctx, models.Entry{ID: id, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Delete(ctx, id, userID)
}

// categoryValidationService is the CategoryService counterpart of
// entryValidationService.
type categoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
	logger    *logger.Logger
}

func NewCategoryValidationService(logger *logger.Logger) CategoryServiceWrapper {
	return &categoryValidationService{
		validator: validators.NewVaultValidator(),
		logger:    logger,
	}
}

func (v *categoryValidationService) Wrap(inner CategoryService) CategoryService {
	return &categoryValidationService{
		inner:     inner,
		validator: v.validator,
		logger:    v.logger,
	}
}

func (v *categoryValidationService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return v.inner.List(ctx, userID)
}

func (v *categoryValidationService) Create(ctx context.Context, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, category)
}

func (v *categoryValidationService) Update(ctx context.Context, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category, validators.FieldID, validators.FieldUserID, validators.FieldName, validators.FieldIcon); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, category)
}

func (v *categoryValidationService) Delete(ctx context.Context, id string, userID int64) error {
	if err := v.validator.Validate(ctx, models.Category{ID: id, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Delete(ctx, id, userID)
}
