package http

import (
	"net/http"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	settings, err := h.services.SettingsService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to get settings")
		return
	}

	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var update models.SettingsUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	settings, err := h.services.SettingsService.Update(r.Context(), userID, update)
	if err != nil {
		writeServiceError(w, r, err, "failed to update settings")
		return
	}

	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}
