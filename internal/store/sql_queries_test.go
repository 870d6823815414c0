// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	ctx := context.Background()
	user := models.User{Email: "a@b.c", Username: "a", PasswordHash: "h", Settings: models.DefaultUserSettings()}

	query, args, err := buildCreateUserQuery(ctx, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id, created_at")
	require.Contains(t, query, "$7")
	require.NotContains(t, query, "?")

	require.Len(t, args, 7)
	require.Equal(t, "a@b.c", args[0])
	require.Equal(t, models.DefaultAutoLockMinutes, args[4])
}

func Test_buildListCategoriesQuery_OrdersByID(t *testing.T) {
	query, args, err := buildListCategoriesQuery(context.Background(), 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from categories")
	require.Contains(t, q, "where user_id = $1")
	require.True(t, strings.HasSuffix(q, "order by id"))
	require.Equal(t, []any{int64(42)}, args)
}

func Test_buildIncrementEntryCountQuery_NeverNegative(t *testing.T) {
	query, args, err := buildIncrementEntryCountQuery(context.Background(), "c1", 7, -1)
	require.NoError(t, err)

	require.Contains(t, query, "GREATEST(entry_count + $1, 0)")
	require.Equal(t, []any{-1, "c1", int64(7)}, args)
}

func Test_buildEntryQueries_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	entry := models.Entry{ID: "e1", UserID: 3, UpdatedAt: time.Now()}

	builders := map[string]func() (string, []any, error){
		"get":    func() (string, []any, error) { return buildGetEntryQuery(ctx, "e1", 3) },
		"update": func() (string, []any, error) { return buildUpdateEntryQuery(ctx, entry) },
		"delete": func() (string, []any, error) { return buildDeleteEntryQuery(ctx, "e1", 3) },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			query, args, err := build()
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "entries")
			require.Contains(t, q, "id = $")
			require.Contains(t, q, "user_id = $")
			require.Equal(t, int64(3), args[len(args)-1])
		})
	}
}

func Test_buildUpdateEntryQuery_SetsEveryMutableColumn(t *testing.T) {
	query, _, err := buildUpdateEntryQuery(context.Background(), models.Entry{ID: "e1", UserID: 1})
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range []string{"category_id", "title", "username", "password", "notes", "custom_fields", "tags", "updated_at"} {
		require.Contains(t, q, col+" = $")
	}
	require.NotContains(t, q, "created_at = $")
}

func Test_buildClientCacheQueries_UseQuestionPlaceholders(t *testing.T) {
	ctx := context.Background()

	save, _, err := buildSaveLocalSessionQuery(ctx, models.LocalSession{UserID: 1, Token: "t", SavedAt: time.Now()})
	require.NoError(t, err)
	require.Contains(t, save, "ON CONFLICT(id) DO UPDATE")
	require.NotContains(t, save, "$1")
	require.Contains(t, save, "?")

	settings, args, err := buildSaveLocalSettingsQuery(ctx, 9, models.UserSettings{AutoLockTimer: 1})
	require.NoError(t, err)
	require.Contains(t, settings, "ON CONFLICT(user_id) DO UPDATE")
	require.Equal(t, int64(9), args[0])
}
