// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/mock"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTransportKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEntryService(t *testing.T, ctrl *gomock.Controller) (*entryService, *mock.MockEntryRepository, *mock.MockCategoryRepository) {
	t.Helper()
	entries := mock.NewMockEntryRepository(ctrl)
	categories := mock.NewMockCategoryRepository(ctrl)

	transport, err := crypto.NewTransportCipher(testTransportKey, logger.Nop())
	require.NoError(t, err)

	svc := NewEntryService(entries, categories, transport, logger.Nop()).(*entryService)
	svc.now = func() time.Time { return fixedNow }
	return svc, entries, categories
}

func sampleEntry() models.Entry {
	notes := "vault-notes"
	return models.Entry{
		UserID:     1,
		CategoryID: "cat-1",
		Title:      "Mail",
		Username:   "alice",
		Password:   "vault-envelope",
		Notes:      &notes,
		CustomFields: models.CustomFields{
			{Name: "pin", Value: "vault-pin", IsEncrypted: true},
			{Name: "hint", Value: "plain hint"},
		},
		Tags: models.Tags{"work"},
	}
}

func TestEntryService_Create_SealsAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, entries, categories := newTestEntryService(t, ctrl)
	ctx := context.Background()
	in := sampleEntry()

	gomock.InOrder(
		categories.EXPECT().Get(ctx, "cat-1", int64(1)).Return(models.Category{ID: "cat-1", UserID: 1}, nil),
		entries.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.Entry) (models.Entry, error) {
				assert.NotEmpty(t, e.ID)
				assert.Equal(t, fixedNow, e.CreatedAt)
				assert.Equal(t, fixedNow, e.UpdatedAt)
				assert.True(t, strings.Contains(e.Password, ":"), "password must be transport sealed")
				assert.NotEqual(t, "vault-envelope", e.Password)
				assert.NotEqual(t, "vault-pin", e.CustomFields[0].Value)
				assert.Equal(t, "plain hint", e.CustomFields[1].Value)
				assert.NotEmpty(t, e.CustomFields[0].ID)
				assert.NotEmpty(t, e.CustomFields[1].ID)
				assert.Equal(t, "vault-notes", e.NotesValue(), "notes are only vault encrypted")
				return e, nil
			},
		),
	)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "vault-envelope", got.Password, "response carries the opened value")
	assert.Equal(t, "vault-pin", got.CustomFields[0].Value)
	assert.Empty(t, in.ID, "input must not be modified")
}

func TestEntryService_Create_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, categories := newTestEntryService(t, ctrl)
	categories.EXPECT().Get(gomock.Any(), "cat-1", int64(1)).Return(models.Category{}, store.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), sampleEntry())
	require.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestEntryService_Create_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, entries, categories := newTestEntryService(t, ctrl)
	categories.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Category{}, nil)
	entries.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Entry{}, errors.New("insert failed"))

	_, err := svc.Create(context.Background(), sampleEntry())
	require.Error(t, err)
}

func TestEntryService_List_OpensTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, entries, _ := newTestEntryService(t, ctrl)
	sealed, err := svc.transport.SealEntry(sampleEntry())
	require.NoError(t, err)

	legacy := sampleEntry()
	legacy.Password = "written-before-transport"

	entries.EXPECT().List(gomock.Any(), int64(1)).Return([]models.Entry{sealed, legacy}, nil)

	got, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "vault-envelope", got[0].Password)
	assert.Equal(t, "vault-pin", got[0].CustomFields[0].Value)
	assert.Equal(t, "written-before-transport", got[1].Password)
}

func TestEntryService_Update(t *testing.T) {
	created := fixedNow.Add(-48 * time.Hour)

	t.Run("same category keeps counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, entries, _ := newTestEntryService(t, ctrl)

		in := sampleEntry()
		in.ID = "e-1"
		entries.EXPECT().Get(gomock.Any(), "e-1", int64(1)).Return(models.Entry{ID: "e-1", CategoryID: "cat-1", CreatedAt: created}, nil)
		entries.EXPECT().Update(gomock.Any(), gomock.Any(), "cat-1").DoAndReturn(
			func(_ context.Context, e models.Entry, _ string) (models.Entry, error) {
				assert.Equal(t, created, e.CreatedAt)
				assert.Equal(t, fixedNow, e.UpdatedAt)
				return e, nil
			},
		)

		got, err := svc.Update(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, got.UpdatedAt)
	})

	t.Run("moving category moves the count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, entries, categories := newTestEntryService(t, ctrl)

		in := sampleEntry()
		in.ID = "e-1"
		in.CategoryID = "cat-2"
		entries.EXPECT().Get(gomock.Any(), "e-1", int64(1)).Return(models.Entry{ID: "e-1", CategoryID: "cat-1"}, nil)
		categories.EXPECT().Get(gomock.Any(), "cat-2", int64(1)).Return(models.Category{ID: "cat-2"}, nil)
		entries.EXPECT().Update(gomock.Any(), gomock.Any(), "cat-1").DoAndReturn(
			func(_ context.Context, e models.Entry, _ string) (models.Entry, error) {
				assert.Equal(t, "cat-2", e.CategoryID)
				return e, nil
			},
		)

		_, err := svc.Update(context.Background(), in)
		require.NoError(t, err)
	})

	t.Run("missing entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, entries, _ := newTestEntryService(t, ctrl)

		entries.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Entry{}, store.ErrEntryNotFound)

		_, err := svc.Update(context.Background(), sampleEntry())
		require.ErrorIs(t, err, store.ErrEntryNotFound)
	})
}

func TestEntryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, entries, _ := newTestEntryService(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().Delete(ctx, "e-1", int64(1)).Return(nil)
	require.NoError(t, svc.Delete(ctx, "e-1", 1))

	entries.EXPECT().Delete(ctx, "missing", int64(1)).Return(store.ErrEntryNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "missing", 1), store.ErrEntryNotFound)
}

func TestEntryService_WithMockTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock.NewMockEntryRepository(ctrl)
	categories := mock.NewMockCategoryRepository(ctrl)
	transport := mock.NewMockTransportStage(ctrl)
	svc := NewEntryService(entries, categories, transport, logger.Nop())

	categories.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Category{}, nil)
	transport.EXPECT().SealEntry(gomock.Any()).Return(models.Entry{}, crypto.ErrEncryption)

	_, err := svc.Create(context.Background(), sampleEntry())
	require.ErrorIs(t, err, crypto.ErrEncryption)
}
