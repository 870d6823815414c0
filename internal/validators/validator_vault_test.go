// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() models.Entry {
	return models.Entry{
		UserID:     1,
		CategoryID: "c1",
		Title:      "GitHub",
		Username:   "alice",
		Password:   "ciphertext",
		CustomFields: models.CustomFields{
			{Name: "PIN", Value: "1234", IsEncrypted: true},
		},
	}
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewVaultValidator(t *testing.T) {
	require.NotNil(t, NewVaultValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Entry(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Entry)
		fields []string
		want   error
	}{
		{name: "valid", mutate: func(*models.Entry) {}},
		{name: "missing title", mutate: func(e *models.Entry) { e.Title = "  " }, want: ErrEmptyTitle},
		{name: "missing username", mutate: func(e *models.Entry) { e.Username = "" }, want: ErrEmptyUsername},
		{name: "missing password", mutate: func(e *models.Entry) { e.Password = "" }, want: ErrEmptyPassword},
		{name: "missing category", mutate: func(e *models.Entry) { e.CategoryID = "" }, want: ErrEmptyCategory},
		{name: "missing user", mutate: func(e *models.Entry) { e.UserID = 0 }, want: ErrInvalidUserID},
		{name: "unnamed custom field", mutate: func(e *models.Entry) { e.CustomFields[0].Name = "" }, want: ErrEmptyFieldName},
		{name: "id only when asked", mutate: func(e *models.Entry) {}, fields: []string{FieldID}, want: ErrInvalidID},
		{name: "unknown field", mutate: func(e *models.Entry) {}, fields: []string{"colour"}, want: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)

			err := v.Validate(ctx, &e, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_Category(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Category{UserID: 1, Name: "Work", Icon: "Briefcase"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Category{UserID: 1, Icon: "Briefcase"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.Category{UserID: 1, Name: "Work"}), ErrEmptyIcon)
	assert.ErrorIs(t, v.Validate(ctx, &models.Category{Name: "Work", Icon: "x"}), ErrInvalidUserID)
}

func TestValidate_User(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	valid := models.User{Email: "alice@example.com", Username: "alice", Password: "pw"}
	assert.NoError(t, v.Validate(ctx, valid))

	bad := valid
	bad.Email = "not-an-email"
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidEmail)

	// login only needs email and password
	login := models.User{Email: "alice@example.com", Password: "pw"}
	assert.NoError(t, v.Validate(ctx, login, FieldEmail, FieldPassword))
	assert.ErrorIs(t, v.Validate(ctx, login), ErrEmptyUsername)
}

func TestValidate_SettingsUpdate(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.SettingsUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.SettingsUpdate{AutoLockTimer: intPtr(-1)}), ErrInvalidAutoLock)
	assert.ErrorIs(t, v.Validate(ctx, models.SettingsUpdate{MasterPasscodeHash: strPtr(" ")}), ErrInvalidPasscodeRef)
	assert.NoError(t, v.Validate(ctx, &models.SettingsUpdate{AutoLockTimer: intPtr(0), BiometricEnabled: boolPtr(true)}))
}
