// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
)

// entryService stores vault entries behind the transport stage. Whatever the
// client sends is sealed before it reaches the repository, and every value
// read back is opened before it leaves the service.
type entryService struct {
	entries    store.EntryRepository
	categories store.CategoryRepository
	transport  crypto.TransportStage
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewEntryService(entries store.EntryRepository, categories store.CategoryRepository, transport crypto.TransportStage, logger *logger.Logger) EntryService {
	return &entryService{
		entries:    entries,
		categories: categories,
		transport:  transport,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *entryService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	entries, err := s.entries.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	for i := range entries {
		entries[i] = s.transport.OpenEntry(entries[i])
	}
	return entries, nil
}

// Create stores a new entry. The repository bumps the entry count of its
// category in the same transaction.
func (s *entryService) Create(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if _, err := s.categories.Get(ctx, entry.CategoryID, entry.UserID); err != nil {
		return models.Entry{}, fmt.Errorf("entry category: %w", err)
	}

	now := s.now()
	entry = entry.Clone()
	entry.ID = s.ids.Generate()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	s.assignFieldIDs(&entry)

	sealed, err := s.transport.SealEntry(entry)
	if err != nil {
		log.Err(err).Str("entry_id", entry.ID).Msg("failed to seal entry")
		return models.Entry{}, fmt.Errorf("seal entry: %w", err)
	}

	created, err := s.entries.Create(ctx, sealed)
	if err != nil {
		log.Err(err).Str("entry_id", entry.ID).Msg("failed to create entry")
		return models.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	return s.transport.OpenEntry(created), nil
}

// Update replaces an entry and stamps UpdatedAt. Moving an entry to another
// category moves one unit of entry count with it.
func (s *entryService) Update(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	current, err := s.entries.Get(ctx, entry.ID, entry.UserID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry: %w", err)
	}

	if current.CategoryID != entry.CategoryID {
		if _, err = s.categories.Get(ctx, entry.CategoryID, entry.UserID); err != nil {
			return models.Entry{}, fmt.Errorf("entry category: %w", err)
		}
	}

	entry = entry.Clone()
	entry.CreatedAt = current.CreatedAt
	entry.UpdatedAt = s.now()
	s.assignFieldIDs(&entry)

	sealed, err := s.transport.SealEntry(entry)
	if err != nil {
		log.Err(err).Str("entry_id", entry.ID).Msg("failed to seal entry")
		return models.Entry{}, fmt.Errorf("seal entry: %w", err)
	}

	updated, err := s.entries.Update(ctx, sealed, current.CategoryID)
	if err != nil {
		log.Err(err).Str("entry_id", entry.ID).Msg("failed to update entry")
		return models.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	return s.transport.OpenEntry(updated), nil
}

// Delete removes an entry. The repository decrements the category count in
// the same transaction.
func (s *entryService) Delete(ctx context.Context, id string, userID int64) error {
	if err := s.entries.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (s *entryService) assignFieldIDs(e *models.Entry) {
	for i := range e.CustomFields {
		if e.CustomFields[i].ID == "" {
			e.CustomFields[i].ID = s.ids.Generate()
		}
	}
}
