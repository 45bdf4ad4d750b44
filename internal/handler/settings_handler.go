package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"toranovel-reader/internal/config"
	"toranovel-reader/internal/domain"
)

// SettingsHandler handles reader-settings HTTP requests
type SettingsHandler struct {
	container       *config.Container
	logger          domain.Logger
	settingsService domain.SettingsService
}

func NewSettingsHandler(container *config.Container, logger domain.Logger) *SettingsHandler {
	return &SettingsHandler{
		container:       container,
		logger:          logger,
		settingsService: container.SettingsService,
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetSettings(user.ID, token)
	if err != nil {
		h.logger.Error("Failed to get reader settings", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings with a partial settings payload.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var patch domain.ReaderSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.settingsService.UpdateSettings(user.ID, &patch, token)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.logger.Error("Failed to update reader settings", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
