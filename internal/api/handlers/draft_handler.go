package handlers

import (
	"net/http"

	"github.com/kulinernusantara/backend/internal/application/services"
	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// DraftHandler handles the autosaved form draft HTTP requests
type DraftHandler struct {
	drafts *services.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(drafts *services.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// GetDraft handles GET /api/draft
//
// The restored flag tells the new-entry form whether to offer restoration;
// an empty slot yields a blank form.
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	form, restored, err := h.drafts.Restore(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load draft")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"data":     form,
		"restored": restored,
	})
}

// TouchDraft handles PUT /api/draft
//
// Each call records a snapshot and rearms the debounce timer; the write
// lands after the quiet period. The response acknowledges receipt, not
// persistence.
func (h *DraftHandler) TouchDraft(w http.ResponseWriter, r *http.Request) {
	var form entities.KulinerForm
	if err := decodeJSONBody(w, r, &form); err != nil {
		return
	}

	h.drafts.Touch(form)
	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}

// ClearDraft handles DELETE /api/draft
func (h *DraftHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.Clear(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to clear draft")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
