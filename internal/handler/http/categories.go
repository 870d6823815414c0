package http

import (
	"net/http"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	categories, err := h.services.CategoryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var category models.Category
	if err := utils.DecodeJSON(r, &category); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	category.UserID = userID

	created, err := h.services.CategoryService.Create(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err, "failed to create category")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var category models.Category
	if err := utils.DecodeJSON(r, &category); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	category.ID = chi.URLParam(r, "id")
	category.UserID = userID

	updated, err := h.services.CategoryService.Update(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err, "failed to update category")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.CategoryService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(w, r, err, "failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
