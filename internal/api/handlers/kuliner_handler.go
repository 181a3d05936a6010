package handlers

import (
	"net/http"

	"github.com/kulinernusantara/backend/internal/application/services"
	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
	queryservices "github.com/kulinernusantara/backend/internal/query/services"
)

// KulinerHandler handles the UMKM catalog HTTP requests
type KulinerHandler struct {
	catalog     *services.KulinerService
	reviews     *services.ReviewService
	ratings     *services.RatingService
	preferences repositories.PreferenceRepository
	listView    *queryservices.View
}

// NewKulinerHandler creates a new kuliner handler
func NewKulinerHandler(
	catalog *services.KulinerService,
	reviews *services.ReviewService,
	ratings *services.RatingService,
	preferences repositories.PreferenceRepository,
) *KulinerHandler {
	return &KulinerHandler{
		catalog:     catalog,
		reviews:     reviews,
		ratings:     ratings,
		preferences: preferences,
		listView:    queryservices.NewView(nil, entities.DefaultSettings().PaginationSize),
	}
}

// ListKuliner handles GET /api/kuliner
//
// The list accepts the full pipeline filter (kategori, provinsi, kota,
// maxPrice, free-text q) plus a status parameter. Page size falls back to
// the stored pagination setting. Browsing state lives in a View, so a
// filter or sort change lands back on page 1.
func (h *KulinerHandler) ListKuliner(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list kuliner")
		return
	}

	snapshot, err := h.ratings.Snapshot(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load ratings")
		return
	}

	settings, err := h.preferences.GetSettings(r.Context())
	if err != nil {
		settings = entities.DefaultSettings()
	}

	filter := filterParams(r)
	filter.Status = entities.Status(r.URL.Query().Get("status"))

	query := queryservices.NewKulinerQueryService(snapshot)
	page := h.listView.Serve(query, items,
		filter,
		sortKeyParam(r, queryservices.SortName),
		intParam(r, "page", 0),
		intParam(r, "pageSize", settings.PaginationSize),
	)

	respondWithJSON(w, http.StatusOK, page)
}

// GetKuliner handles GET /api/kuliner/{id}
func (h *KulinerHandler) GetKuliner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	item, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	reviews, err := h.reviews.ListByKuliner(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	if reviews == nil {
		reviews = []entities.Review{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"kuliner": item,
		"rating":  services.Summarize(reviews, item.Rating),
		"reviews": reviews,
	})
}

// CreateKuliner handles POST /api/kuliner
func (h *KulinerHandler) CreateKuliner(w http.ResponseWriter, r *http.Request) {
	var form entities.KulinerForm
	if err := decodeJSONBody(w, r, &form); err != nil {
		return
	}

	item, err := h.catalog.Create(r.Context(), form)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

// UpdateKuliner handles PUT /api/kuliner/{id}
func (h *KulinerHandler) UpdateKuliner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	var form entities.KulinerForm
	if err := decodeJSONBody(w, r, &form); err != nil {
		return
	}

	item, err := h.catalog.Update(r.Context(), id, form)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// DeleteKuliner handles DELETE /api/kuliner/{id}
func (h *KulinerHandler) DeleteKuliner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PublishKuliner handles POST /api/kuliner/{id}/publish
func (h *KulinerHandler) PublishKuliner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "kuliner ID is required")
		return
	}

	item, err := h.catalog.Publish(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ExportKuliner handles GET /api/kuliner/export.csv
func (h *KulinerHandler) ExportKuliner(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list kuliner")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="kuliner.csv"`)
	if err := queryservices.ExportCSV(w, items); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to export csv")
	}
}

// GetCatalogStats handles GET /api/kuliner/stats
func (h *KulinerHandler) GetCatalogStats(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list kuliner")
		return
	}

	stats, err := h.ratings.Stats(r.Context(), items)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
