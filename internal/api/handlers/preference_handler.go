package handlers

import (
	"net/http"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
)

// PreferenceHandler handles the preference scalars: admin settings, the
// selected area, the theme, the saved discovery filters, the bookmarked
// kuliner ids, and the simulated session role.
type PreferenceHandler struct {
	preferences repositories.PreferenceRepository
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences repositories.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// GetSettings handles GET /api/settings
func (h *PreferenceHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.preferences.GetSettings(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/settings
func (h *PreferenceHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings entities.Settings
	if err := decodeJSONBody(w, r, &settings); err != nil {
		return
	}
	if !settings.Theme.IsValid() {
		settings.Theme = entities.ThemeLight
	}
	if settings.PaginationSize < 1 {
		settings.PaginationSize = entities.DefaultSettings().PaginationSize
	}

	if err := h.preferences.SaveSettings(r.Context(), settings); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// ResetSettings handles POST /api/settings/reset
func (h *PreferenceHandler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.preferences.ResetSettings(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to reset settings")
		return
	}
	respondWithJSON(w, http.StatusOK, entities.DefaultSettings())
}

// GetArea handles GET /api/area
//
// A null body means no area is selected; discovery then falls back to the
// popular scope.
func (h *PreferenceHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	area, err := h.preferences.GetArea(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load area")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"area": area})
}

// UpdateArea handles PUT /api/area
func (h *PreferenceHandler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	var area entities.Area
	if err := decodeJSONBody(w, r, &area); err != nil {
		return
	}
	if area.Provinsi == "" || area.Kota == "" {
		respondWithError(w, http.StatusBadRequest, "provinsi and kota are required")
		return
	}

	if err := h.preferences.SaveArea(r.Context(), area); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save area")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"area": area})
}

// ClearArea handles DELETE /api/area
func (h *PreferenceHandler) ClearArea(w http.ResponseWriter, r *http.Request) {
	if err := h.preferences.ClearArea(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to clear area")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// GetTheme handles GET /api/theme
func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.preferences.GetTheme(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load theme")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]entities.Theme{"theme": theme})
}

// UpdateTheme handles PUT /api/theme
func (h *PreferenceHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme entities.Theme `json:"theme"`
	}
	if err := decodeJSONBody(w, r, &body); err != nil {
		return
	}
	if !body.Theme.IsValid() {
		respondWithError(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	if err := h.preferences.SaveTheme(r.Context(), body.Theme); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save theme")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]entities.Theme{"theme": body.Theme})
}

// GetDiscoveryFilters handles GET /api/discovery/filters
func (h *PreferenceHandler) GetDiscoveryFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.preferences.GetDiscoveryFilters(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load filters")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"filters": filters})
}

// UpdateDiscoveryFilters handles PUT /api/discovery/filters
func (h *PreferenceHandler) UpdateDiscoveryFilters(w http.ResponseWriter, r *http.Request) {
	var filters entities.DiscoveryFilters
	if err := decodeJSONBody(w, r, &filters); err != nil {
		return
	}

	if err := h.preferences.SaveDiscoveryFilters(r.Context(), filters); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save filters")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"filters": filters})
}

// GetFavorites handles GET /api/favorites
func (h *PreferenceHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.preferences.GetFavorites(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load favorites")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"favorites": ids})
}

// ToggleFavorite handles POST /api/favorites/{id}/toggle
//
// One endpoint serves both directions: the id is bookmarked when absent and
// removed when present, mirroring the bookmark button.
func (h *PreferenceHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	favorited, err := h.preferences.ToggleFavorite(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to toggle favorite")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":        id,
		"favorited": favorited,
	})
}

// GetSession handles GET /api/session
func (h *PreferenceHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	role, err := h.preferences.GetRole(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]entities.Role{"role": role})
}

// Login handles POST /api/session
//
// This is a simulated auth scheme: the role marker is stored and read back,
// nothing is verified.
func (h *PreferenceHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role entities.Role `json:"role"`
	}
	if err := decodeJSONBody(w, r, &body); err != nil {
		return
	}
	if !body.Role.IsValid() {
		respondWithError(w, http.StatusBadRequest, "role must be visitor, umkm or admin")
		return
	}

	if err := h.preferences.SaveRole(r.Context(), body.Role); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]entities.Role{"role": body.Role})
}

// Logout handles DELETE /api/session
func (h *PreferenceHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.preferences.ClearRole(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
