package handlers

import (
	"net/http"

	"github.com/kulinernusantara/backend/internal/application/services"
	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviews *services.ReviewService
	catalog *services.KulinerService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *services.ReviewService, catalog *services.KulinerService) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		catalog: catalog,
	}
}

type reviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// SubmitReview handles POST /api/kuliner/{id}/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	kulinerID := r.PathValue("id")
	if kulinerID == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	var req reviewRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return
	}

	review, err := h.reviews.Submit(r.Context(), kulinerID, req.Rating, req.Text)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, review)
}

// ListReviews handles GET /api/kuliner/{id}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	kulinerID := r.PathValue("id")
	if kulinerID == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	reviews, err := h.reviews.ListByKuliner(r.Context(), kulinerID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	if reviews == nil {
		reviews = []entities.Review{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// ListAllReviews handles GET /api/reviews
func (h *ReviewHandler) ListAllReviews(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list kuliner")
		return
	}
	names := make(map[string]string, len(items))
	for i := range items {
		names[items[i].ID] = items[i].Nama
	}

	details, err := h.reviews.ListAll(r.Context(), names, services.ReviewListParams{
		Search: r.URL.Query().Get("q"),
		Oldest: r.URL.Query().Get("sort") == "oldest",
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": details,
		"count":   len(details),
	})
}

// UpdateReview handles PUT /api/reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("id")
	if reviewID == "" {
		respondWithError(w, http.StatusBadRequest, "review ID is required")
		return
	}

	var req reviewRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return
	}

	review, err := h.reviews.Edit(r.Context(), reviewID, req.Rating, req.Text)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("id")
	if reviewID == "" {
		respondWithError(w, http.StatusBadRequest, "review ID is required")
		return
	}

	if err := h.reviews.Delete(r.Context(), reviewID); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
