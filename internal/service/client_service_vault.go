// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-lockr/internal/adapter"
	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/health"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/session"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/models"
	"golang.org/x/sync/errgroup"
)

// clientVaultService keeps two views of the vault:
//   - raw holds entries exactly as served, with sensitive fields as vault
//     envelopes;
//   - entries holds the decrypted view while unlocked and a copy of raw
//     while locked.
//
// Locking the session resets entries to raw synchronously.
type clientVaultService struct {
	adapter  adapter.ServerAdapter
	local    *store.LocalStorages
	session  *session.Session
	vault    crypto.VaultStage
	identity *Identity
	logger   *logger.Logger

	mu         sync.RWMutex
	settings   models.UserSettings
	categories []models.Category
	raw        []models.Entry
	entries    []models.Entry
}

func NewClientVaultService(
	local *store.LocalStorages,
	serverAdapter adapter.ServerAdapter,
	sess *session.Session,
	vault crypto.VaultStage,
	identity *Identity,
	logger *logger.Logger,
) ClientVaultService {
	v := &clientVaultService{
		adapter:  serverAdapter,
		local:    local,
		session:  sess,
		vault:    vault,
		identity: identity,
		logger:   logger,
	}
	sess.OnLock(v.wipe)
	return v
}

func (v *clientVaultService) wipe() {
	v.mu.Lock()
	v.entries = cloneEntries(v.raw)
	v.mu.Unlock()

	v.logger.Debug().Msg("vault locked, plaintext dropped")
}

func (v *clientVaultService) Refresh(ctx context.Context) error {
	userID, err := v.identity.UserID()
	if err != nil {
		return err
	}

	settings, err := v.adapter.GetSettings(ctx, userID)
	if err != nil {
		return fmt.Errorf("get settings: %w", mapAdapterError(err))
	}
	v.storeSettings(ctx, userID, settings)

	var (
		categories []models.Category
		raw        []models.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = v.loadCategories(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		raw, err = v.adapter.ListEntries(gctx, userID)
		if err != nil {
			return fmt.Errorf("list entries: %w", mapAdapterError(err))
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return err
	}

	v.mu.Lock()
	v.categories = categories
	v.mu.Unlock()

	v.publish(raw, v.decrypt(ctx, raw, v.session.Passcode()))

	logger.FromContext(ctx).Debug().
		Int("categories", len(categories)).
		Int("entries", len(raw)).
		Msg("vault refreshed")
	return nil
}

// loadCategories lists the user's categories and seeds the defaults for an
// empty account.
func (v *clientVaultService) loadCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := v.adapter.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", mapAdapterError(err))
	}
	if len(categories) > 0 {
		return categories, nil
	}

	for _, c := range models.DefaultCategories() {
		c.UserID = userID
		created, err := v.adapter.CreateCategory(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", c.Name, mapAdapterError(err))
		}
		categories = append(categories, created)
	}
	return categories, nil
}

func (v *clientVaultService) decrypt(ctx context.Context, raw []models.Entry, passcode string) []models.Entry {
	if passcode == "" {
		return cloneEntries(raw)
	}
	return v.vault.DecryptEntries(ctx, raw, passcode)
}

// publish swaps both views. A lock that raced with decryption wins.
func (v *clientVaultService) publish(raw, decrypted []models.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.raw = raw
	if v.session.State() == session.Locked {
		v.entries = cloneEntries(raw)
		return
	}
	v.entries = decrypted
}

func (v *clientVaultService) storeSettings(ctx context.Context, userID int64, settings models.UserSettings) {
	v.mu.Lock()
	v.settings = settings
	v.mu.Unlock()

	v.session.SetAutoLock(time.Duration(settings.AutoLockTimer) * time.Minute)

	if err := v.local.Settings.SaveSettings(ctx, userID, settings); err != nil {
		v.logger.Warn().Err(err).Msg("failed to cache settings")
	}
}

func (v *clientVaultService) Settings() models.UserSettings {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.settings
}

func (v *clientVaultService) HasPasscode() bool {
	return v.Settings().MasterPasscodeHash != ""
}

func (v *clientVaultService) CreatePasscode(ctx context.Context, passcode string) error {
	userID, err := v.identity.UserID()
	if err != nil {
		return err
	}
	if v.HasPasscode() {
		return ErrPasscodeAlreadySet
	}

	hash, err := v.session.CreatePasscode(passcode)
	if err != nil {
		return err
	}

	done := true
	updated, err := v.adapter.UpdateSettings(ctx, userID, models.SettingsUpdate{
		MasterPasscodeHash:     &hash,
		HasCompletedOnboarding: &done,
	})
	if err != nil {
		v.session.Lock()
		return fmt.Errorf("store passcode: %w", mapAdapterError(err))
	}
	v.storeSettings(ctx, userID, updated)
	v.decryptAll(ctx, passcode)
	return nil
}

// Unlock verifies passcode against the verifier in settings, falling back to
// the local cache so the vault opens without a refresh.
func (v *clientVaultService) Unlock(ctx context.Context, passcode string) error {
	hash := v.Settings().MasterPasscodeHash
	if hash == "" {
		if userID, err := v.identity.UserID(); err == nil {
			cached, err := v.local.Settings.LoadSettings(ctx, userID)
			switch {
			case err == nil:
				hash = cached.MasterPasscodeHash
			case !errors.Is(err, store.ErrLocalSettingsNotFound):
				v.logger.Warn().Err(err).Msg("failed to load cached settings")
			}
		}
	}

	if err := v.session.Unlock(passcode, hash); err != nil {
		return err
	}
	v.decryptAll(ctx, passcode)
	return nil
}

func (v *clientVaultService) RequestPasscodeReset(ctx context.Context) error {
	if _, err := v.identity.UserID(); err != nil {
		return err
	}

	err := v.adapter.SendOTP(ctx, models.OTPRequest{Email: v.identity.Email(), Type: models.OTPResetPasscode})
	if err != nil {
		return fmt.Errorf("send code: %w", mapAdapterError(err))
	}
	return nil
}

func (v *clientVaultService) ResetPasscode(ctx context.Context, code, passcode string) error {
	userID, err := v.identity.UserID()
	if err != nil {
		return err
	}
	// checked before the code is spent
	if err = session.ValidatePasscode(passcode); err != nil {
		return err
	}

	email := v.identity.Email()
	_, err = v.adapter.VerifyOTP(ctx, models.OTPVerification{Email: email, OTP: code, Type: models.OTPResetPasscode})
	if err != nil {
		return fmt.Errorf("verify code: %w", mapAdapterError(err))
	}
	v.saveToken(ctx, userID, email)

	v.session.Lock()
	hash, err := v.session.CreatePasscode(passcode)
	if err != nil {
		return err
	}

	updated, err := v.adapter.UpdateSettings(ctx, userID, models.SettingsUpdate{MasterPasscodeHash: &hash})
	if err != nil {
		v.session.Lock()
		return fmt.Errorf("store passcode: %w", mapAdapterError(err))
	}
	v.storeSettings(ctx, userID, updated)
	v.decryptAll(ctx, passcode)

	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("passcode reset")
	return nil
}

// saveToken caches the token issued by a code verification so the next
// start does not fall back to the older one.
func (v *clientVaultService) saveToken(ctx context.Context, userID int64, email string) {
	err := v.local.Sessions.SaveSession(ctx, models.LocalSession{
		UserID:  userID,
		Email:   email,
		Token:   v.adapter.Token(),
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		v.logger.Warn().Err(err).Msg("failed to cache session")
	}
}

func (v *clientVaultService) decryptAll(ctx context.Context, passcode string) {
	v.mu.RLock()
	raw := cloneEntries(v.raw)
	v.mu.RUnlock()

	v.publish(raw, v.decrypt(ctx, raw, passcode))
}

func (v *clientVaultService) Lock() {
	v.session.Lock()
}

func (v *clientVaultService) Locked() bool {
	return v.session.State() == session.Locked
}

// requirePasscode returns the passcode snapshot for one operation.
func (v *clientVaultService) requirePasscode() (string, error) {
	passcode := v.session.Passcode()
	if passcode == "" {
		return "", session.ErrLocked
	}
	v.session.Touch()
	return passcode, nil
}

func (v *clientVaultService) Entries() []models.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneEntries(v.entries)
}

func (v *clientVaultService) Entry(id string) (models.Entry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	i := indexOfEntry(v.entries, id)
	if i < 0 {
		return models.Entry{}, store.ErrEntryNotFound
	}
	return v.entries[i].Clone(), nil
}

func (v *clientVaultService) EntriesByCategory(categoryID string) []models.Entry {
	return v.filter(func(e models.Entry) bool {
		return e.CategoryID == categoryID
	})
}

func (v *clientVaultService) Search(query string) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return v.Entries()
	}
	return v.filter(func(e models.Entry) bool {
		return strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Username), q) ||
			strings.Contains(strings.ToLower(e.NotesValue()), q)
	})
}

func (v *clientVaultService) filter(keep func(models.Entry) bool) []models.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var out []models.Entry
	for _, e := range v.entries {
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}

func (v *clientVaultService) AddEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	userID, err := v.identity.UserID()
	if err != nil {
		return models.Entry{}, err
	}
	passcode, err := v.requirePasscode()
	if err != nil {
		return models.Entry{}, err
	}

	entry.UserID = userID
	sealed, err := v.vault.EncryptEntry(ctx, entry, passcode)
	if err != nil {
		return models.Entry{}, fmt.Errorf("encrypt entry: %w", err)
	}

	stored, err := v.adapter.CreateEntry(ctx, sealed)
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry: %w", mapAdapterError(err))
	}
	plain := mergeStored(entry, stored)

	v.mu.Lock()
	v.raw = append(v.raw, stored)
	v.entries = append(v.entries, v.visible(plain, stored))
	v.adjustCount(stored.CategoryID, 1)
	v.mu.Unlock()

	return plain, nil
}

// UpdateEntry re-encrypts every sensitive field, so a changed value never
// travels under an old envelope.
func (v *clientVaultService) UpdateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	userID, err := v.identity.UserID()
	if err != nil {
		return models.Entry{}, err
	}
	passcode, err := v.requirePasscode()
	if err != nil {
		return models.Entry{}, err
	}

	v.mu.RLock()
	i := indexOfEntry(v.raw, entry.ID)
	var previousCategory string
	if i >= 0 {
		previousCategory = v.raw[i].CategoryID
	}
	v.mu.RUnlock()
	if i < 0 {
		return models.Entry{}, store.ErrEntryNotFound
	}

	entry.UserID = userID
	sealed, err := v.vault.EncryptEntry(ctx, entry, passcode)
	if err != nil {
		return models.Entry{}, fmt.Errorf("encrypt entry: %w", err)
	}

	stored, err := v.adapter.UpdateEntry(ctx, sealed)
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry: %w", mapAdapterError(err))
	}
	plain := mergeStored(entry, stored)

	v.mu.Lock()
	if j := indexOfEntry(v.raw, stored.ID); j >= 0 {
		v.raw[j] = stored
	}
	if j := indexOfEntry(v.entries, stored.ID); j >= 0 {
		v.entries[j] = v.visible(plain, stored)
	}
	if previousCategory != stored.CategoryID {
		v.adjustCount(previousCategory, -1)
		v.adjustCount(stored.CategoryID, 1)
	}
	v.mu.Unlock()

	return plain, nil
}

func (v *clientVaultService) SetCustomFieldEncrypted(ctx context.Context, entryID, fieldID string, encrypted bool) (models.Entry, error) {
	if _, err := v.requirePasscode(); err != nil {
		return models.Entry{}, err
	}

	current, err := v.Entry(entryID)
	if err != nil {
		return models.Entry{}, err
	}

	i := slices.IndexFunc(current.CustomFields, func(f models.CustomField) bool {
		return f.ID == fieldID
	})
	if i < 0 {
		return models.Entry{}, ErrFieldNotFound
	}
	if current.CustomFields[i].IsEncrypted == encrypted {
		return current, nil
	}

	current.CustomFields[i].IsEncrypted = encrypted
	return v.UpdateEntry(ctx, current)
}

func (v *clientVaultService) DeleteEntry(ctx context.Context, id string) error {
	if err := v.adapter.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", mapAdapterError(err))
	}
	v.session.Touch()

	v.mu.Lock()
	defer v.mu.Unlock()

	if i := indexOfEntry(v.raw, id); i >= 0 {
		v.adjustCount(v.raw[i].CategoryID, -1)
		v.raw = slices.Delete(v.raw, i, i+1)
	}
	if i := indexOfEntry(v.entries, id); i >= 0 {
		v.entries = slices.Delete(v.entries, i, i+1)
	}
	return nil
}

func (v *clientVaultService) Categories() []models.Category {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.categories)
}

func (v *clientVaultService) AddCategory(ctx context.Context, category models.Category) (models.Category, error) {
	userID, err := v.identity.UserID()
	if err != nil {
		return models.Category{}, err
	}

	category.UserID = userID
	created, err := v.adapter.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", mapAdapterError(err))
	}

	v.mu.Lock()
	v.categories = append(v.categories, created)
	v.mu.Unlock()
	return created, nil
}

func (v *clientVaultService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	userID, err := v.identity.UserID()
	if err != nil {
		return models.Category{}, err
	}

	category.UserID = userID
	updated, err := v.adapter.UpdateCategory(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("update category: %w", mapAdapterError(err))
	}

	v.mu.Lock()
	if i := v.indexOfCategory(updated.ID); i >= 0 {
		v.categories[i] = updated
	}
	v.mu.Unlock()
	return updated, nil
}

// DeleteCategory drops the category and, matching the server's cascade, its
// entries.
func (v *clientVaultService) DeleteCategory(ctx context.Context, id string) error {
	if err := v.adapter.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", mapAdapterError(err))
	}

	inCategory := func(e models.Entry) bool { return e.CategoryID == id }

	v.mu.Lock()
	defer v.mu.Unlock()

	if i := v.indexOfCategory(id); i >= 0 {
		v.categories = slices.Delete(v.categories, i, i+1)
	}
	v.raw = slices.DeleteFunc(v.raw, inCategory)
	v.entries = slices.DeleteFunc(v.entries, inCategory)
	return nil
}

// Health analyses the decrypted view. Envelopes would all score as strong
// and unique, so a locked vault is refused.
func (v *clientVaultService) Health(now time.Time) (models.HealthReport, error) {
	if v.Locked() {
		return models.HealthReport{}, session.ErrLocked
	}
	v.session.Touch()
	return health.Analyze(v.Entries(), now), nil
}

func (v *clientVaultService) UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.UserSettings, error) {
	userID, err := v.identity.UserID()
	if err != nil {
		return models.UserSettings{}, err
	}
	if update.IsEmpty() {
		return v.Settings(), nil
	}
	if update.AutoLockTimer != nil && *update.AutoLockTimer < 0 {
		return models.UserSettings{}, ErrInvalidDataProvided
	}

	updated, err := v.adapter.UpdateSettings(ctx, userID, update)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("update settings: %w", mapAdapterError(err))
	}
	v.storeSettings(ctx, userID, updated)
	return updated, nil
}

// visible picks what the entries view may hold. Callers hold v.mu.
func (v *clientVaultService) visible(plain, stored models.Entry) models.Entry {
	if v.session.State() == session.Locked {
		return stored.Clone()
	}
	return plain
}

// adjustCount mirrors the server's entry counter. Callers hold v.mu.
func (v *clientVaultService) adjustCount(categoryID string, delta int) {
	if i := v.indexOfCategory(categoryID); i >= 0 {
		v.categories[i].EntryCount = max(v.categories[i].EntryCount+delta, 0)
	}
}

func (v *clientVaultService) indexOfCategory(id string) int {
	return slices.IndexFunc(v.categories, func(c models.Category) bool {
		return c.ID == id
	})
}

func indexOfEntry(entries []models.Entry, id string) int {
	return slices.IndexFunc(entries, func(e models.Entry) bool {
		return e.ID == id
	})
}

// mergeStored copies server-assigned ids and timestamps onto the plaintext
// the caller sent. Custom fields keep their order on the server.
func mergeStored(plain, stored models.Entry) models.Entry {
	out := plain.Clone()
	out.ID = stored.ID
	out.UserID = stored.UserID
	out.CategoryID = stored.CategoryID
	out.CreatedAt = stored.CreatedAt
	out.UpdatedAt = stored.UpdatedAt
	for i := range out.CustomFields {
		if i < len(stored.CustomFields) {
			out.CustomFields[i].ID = stored.CustomFields[i].ID
		}
	}
	return out
}

func cloneEntries(entries []models.Entry) []models.Entry {
	if entries == nil {
		return nil
	}
	out := make([]models.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
