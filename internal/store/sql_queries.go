package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-lockr/models"
)

// psql builds PostgreSQL statements; lite builds SQLite statements for the
// client cache.
var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	lite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

var (
	userColumns = []string{
		"user_id", "email", "username", "password_hash", "created_at",
		"biometric_enabled", "auto_lock_timer", "has_completed_onboarding", "master_passcode_hash",
	}
	settingsColumns = []string{
		"biometric_enabled", "auto_lock_timer", "has_completed_onboarding", "master_passcode_hash",
	}
	categoryColumns = []string{"id", "user_id", "name", "icon", "color", "entry_count"}
	entryColumns    = []string{
		"id", "user_id", "category_id", "title", "username", "password",
		"notes", "custom_fields", "tags", "created_at", "updated_at",
	}
	localSessionColumns = []string{"user_id", "email", "token", "saved_at"}
)

// ── users ───────────────────────────────────────────────────────────────────

func buildCreateUserQuery(_ context.Context, user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("email", "username", "password_hash",
			"biometric_enabled", "auto_lock_timer", "has_completed_onboarding", "master_passcode_hash").
		Values(user.Email, user.Username, user.PasswordHash,
			user.Settings.BiometricEnabled, user.Settings.AutoLockTimer,
			user.Settings.HasCompletedOnboarding, user.Settings.MasterPasscodeHash).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(_ context.Context, email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildGetSettingsQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(settingsColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateSettingsQuery(_ context.Context, userID int64, s models.UserSettings) (string, []any, error) {
	return psql.Update("users").
		SetMap(map[string]any{
			"biometric_enabled":        s.BiometricEnabled,
			"auto_lock_timer":          s.AutoLockTimer,
			"has_completed_onboarding": s.HasCompletedOnboarding,
			"master_passcode_hash":     s.MasterPasscodeHash,
		}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING biometric_enabled, auto_lock_timer, has_completed_onboarding, master_passcode_hash").
		ToSql()
}

// ── categories ──────────────────────────────────────────────────────────────

// Category ids are UUIDv7, so ordering by id keeps creation order.
func buildListCategoriesQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildGetCategoryQuery(_ context.Context, id string, userID int64) (string, []any, error) {
	return psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildCreateCategoryQuery(_ context.Context, c models.Category) (string, []any, error) {
	return psql.Insert("categories").
		Columns("id", "user_id", "name", "icon", "color", "entry_count").
		Values(c.ID, c.UserID, c.Name, c.Icon, c.Color, c.EntryCount).
		ToSql()
}

func buildUpdateCategoryQuery(_ context.Context, c models.Category) (string, []any, error) {
	return psql.Update("categories").
		Set("name", c.Name).
		Set("icon", c.Icon).
		Set("color", c.Color).
		Where(sq.Eq{"id": c.ID, "user_id": c.UserID}).
		Suffix("RETURNING entry_count").
		ToSql()
}

func buildDeleteCategoryEntriesQuery(_ context.Context, id string, userID int64) (string, []any, error) {
	return psql.Delete("entries").
		Where(sq.Eq{"category_id": id, "user_id": userID}).
		ToSql()
}

func buildDeleteCategoryQuery(_ context.Context, id string, userID int64) (string, []any, error) {
	return psql.Delete("categories").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildIncrementEntryCountQuery(_ context.Context, id string, userID int64, delta int) (string, []any, error) {
	return psql.Update("categories").
		Set("entry_count", sq.Expr("GREATEST(entry_count + ?, 0)", delta)).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// ── entries ─────────────────────────────────────────────────────────────────

func buildListEntriesQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetEntryQuery(_ context.Context, id string, userID int64) (string, []any, error) {
	return psql.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildCreateEntryQuery(_ context.Context, e models.Entry) (string, []any, error) {
	return psql.Insert("entries").
		Columns(entryColumns...).
		Values(e.ID, e.UserID, e.CategoryID, e.Title, e.Username, e.Password,
			e.Notes, e.CustomFields, e.Tags, e.CreatedAt, e.UpdatedAt).
		ToSql()
}

func buildUpdateEntryQuery(_ context.Context, e models.Entry) (string, []any, error) {
	return psql.Update("entries").
		SetMap(map[string]any{
			"category_id":   e.CategoryID,
			"title":         e.Title,
			"username":      e.Username,
			"password":      e.Password,
			"notes":         e.Notes,
			"custom_fields": e.CustomFields,
			"tags":          e.Tags,
			"updated_at":    e.UpdatedAt,
		}).
		Where(sq.Eq{"id": e.ID, "user_id": e.UserID}).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildDeleteEntryQuery(_ context.Context, id string, userID int64) (string, []any, error) {
	return psql.Delete("entries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING category_id").
		ToSql()
}

// ── one-time codes ──────────────────────────────────────────────────────────

// A new code replaces any pending one for the same email and resets the
// attempt counter.
func buildSaveOTPQuery(_ context.Context, c models.OTPCode) (string, []any, error) {
	return psql.Insert("otp_codes").
		Columns("email", "purpose", "code_hash", "expires_at", "attempts").
		Values(c.Email, string(c.Purpose), c.CodeHash, c.ExpiresAt, 0).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			purpose = excluded.purpose,
			code_hash = excluded.code_hash,
			expires_at = excluded.expires_at,
			attempts = 0`).
		ToSql()
}

func buildGetOTPQuery(_ context.Context, email string) (string, []any, error) {
	return psql.Select("email", "purpose", "code_hash", "expires_at", "attempts").
		From("otp_codes").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildRecordOTPAttemptQuery(_ context.Context, email string) (string, []any, error) {
	return psql.Update("otp_codes").
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING attempts").
		ToSql()
}

func buildDeleteOTPQuery(_ context.Context, email string) (string, []any, error) {
	return psql.Delete("otp_codes").
		Where(sq.Eq{"email": email}).
		ToSql()
}

// ── client cache ────────────────────────────────────────────────────────────

// local_session holds at most one row with id 1.
func buildSaveLocalSessionQuery(_ context.Context, s models.LocalSession) (string, []any, error) {
	return lite.Insert("local_session").
		Columns("id", "user_id", "email", "token", "saved_at").
		Values(1, s.UserID, s.Email, s.Token, s.SavedAt.UTC()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email,
			token = excluded.token,
			saved_at = excluded.saved_at`).
		ToSql()
}

func buildLoadLocalSessionQuery(_ context.Context) (string, []any, error) {
	return lite.Select(localSessionColumns...).
		From("local_session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildClearLocalSessionQuery(_ context.Context) (string, []any, error) {
	return lite.Delete("local_session").ToSql()
}

func buildSaveLocalSettingsQuery(_ context.Context, userID int64, s models.UserSettings) (string, []any, error) {
	return lite.Insert("settings_cache").
		Columns("user_id", "biometric_enabled", "auto_lock_timer", "has_completed_onboarding", "master_passcode_hash").
		Values(userID, s.BiometricEnabled, s.AutoLockTimer, s.HasCompletedOnboarding, s.MasterPasscodeHash).
		Suffix(`ON CONFLICT(user_id) DO UPDATE SET
			biometric_enabled = excluded.biometric_enabled,
			auto_lock_timer = excluded.auto_lock_timer,
			has_completed_onboarding = excluded.has_completed_onboarding,
			master_passcode_hash = excluded.master_passcode_hash`).
		ToSql()
}

func buildLoadLocalSettingsQuery(_ context.Context, userID int64) (string, []any, error) {
	return lite.Select(settingsColumns...).
		From("settings_cache").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
