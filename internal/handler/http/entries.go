// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/go-chi/chi/v5"
)

// listEntries answers with every entry of the user. Sensitive fields carry
// the client's vault envelopes; the transport layer is already removed.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	entries, err := h.services.EntryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list entries")
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var entry models.Entry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	entry.UserID = userID

	created, err := h.services.EntryService.Create(r.Context(), entry)
	if err != nil {
		writeServiceError(w, r, err, "failed to create entry")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var entry models.Entry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	entry.ID = chi.URLParam(r, "id")
	entry.UserID = userID

	updated, err := h.services.EntryService.Update(r.Context(), entry)
	if err != nil {
		writeServiceError(w, r, err, "failed to update entry")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.EntryService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(w, r, err, "failed to delete entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
