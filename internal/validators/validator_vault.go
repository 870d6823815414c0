package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-lockr/models"
)

const (
	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldTitle        = "title"
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldCategoryID   = "category_id"
	FieldCustomFields = "custom_fields"
	FieldName         = "name"
	FieldIcon         = "icon"
	FieldEmail        = "email"
)

// VaultValidator checks entries, categories, credentials and settings
// updates before they reach the repositories.
type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. With no fields given the
// full rule set for that type is applied.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.SettingsUpdate:
		return v.validateSettingsUpdate(value)
	case *models.SettingsUpdate:
		return v.validateSettingsUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *VaultValidator) validateEntry(_ context.Context, e models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldUsername, FieldPassword, FieldCategoryID, FieldCustomFields}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(e.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if e.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if blank(e.Title) {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if blank(e.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if e.Password == "" {
				return ErrEmptyPassword
			}
		case FieldCategoryID:
			if blank(e.CategoryID) {
				return ErrEmptyCategory
			}
		case FieldCustomFields:
			for i, cf := range e.CustomFields {
				if blank(cf.Name) {
					return fmt.Errorf("%w: index %d", ErrEmptyFieldName, i)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *VaultValidator) validateCategory(_ context.Context, c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldIcon}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(c.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if c.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if blank(c.Name) {
				return ErrEmptyName
			}
		case FieldIcon:
			if blank(c.Icon) {
				return ErrEmptyIcon
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *VaultValidator) validateUser(_ context.Context, u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(u.Email) {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(u.Email); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		case FieldUsername:
			if blank(u.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if u.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *VaultValidator) validateSettingsUpdate(u models.SettingsUpdate) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if u.AutoLockTimer != nil && *u.AutoLockTimer < 0 {
		return ErrInvalidAutoLock
	}
	if u.MasterPasscodeHash != nil && blank(*u.MasterPasscodeHash) {
		return ErrInvalidPasscodeRef
	}
	return nil
}
