package handlers

import (
	"net/http"

	"github.com/kulinernusantara/backend/internal/application/services"
	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/providers"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
	queryservices "github.com/kulinernusantara/backend/internal/query/services"
)

// gridPageSize matches the home grid layout of eight cards per page.
const gridPageSize = 8

// DiscoveryHandler serves the public browsing surface: the area-scoped home
// grid, the full search pipeline, and the static kategori/wilayah lists.
// Each surface browses through its own View, which owns the current page and
// resets it to 1 whenever the filter, sort, or catalog changes.
type DiscoveryHandler struct {
	catalog     *services.KulinerService
	ratings     *services.RatingService
	preferences repositories.PreferenceRepository
	fixtures    *providers.FixtureSet
	limit       int
	gridView    *queryservices.View
	searchView  *queryservices.View
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(
	catalog *services.KulinerService,
	ratings *services.RatingService,
	preferences repositories.PreferenceRepository,
	fixtures *providers.FixtureSet,
	limit int,
) *DiscoveryHandler {
	return &DiscoveryHandler{
		catalog:     catalog,
		ratings:     ratings,
		preferences: preferences,
		fixtures:    fixtures,
		limit:       limit,
		gridView:    queryservices.NewView(nil, gridPageSize),
		searchView:  queryservices.NewView(nil, entities.DefaultSettings().PaginationSize),
	}
}

// discoverResponse is a pipeline page plus the area the grid was scoped to.
type discoverResponse struct {
	queryservices.Page
	Area *entities.Area `json:"area"`
}

// Discover handles GET /api/discovery
//
// Scope resolution: a saved area narrows the grid to its city; without an
// area the curated popular list applies, in its stored order; without either
// the top-rated entries fill the grid. The scoped set then runs through the
// pipeline, so kategori/maxPrice filters, the sort key, and eight-per-page
// pagination apply on top of the scope.
func (h *DiscoveryHandler) Discover(w http.ResponseWriter, r *http.Request) {
	items, snapshot, ok := h.publishedCatalog(w, r)
	if !ok {
		return
	}

	area, err := h.preferences.GetArea(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load area")
		return
	}

	query := queryservices.NewKulinerQueryService(snapshot)
	scoped := query.ScopeDiscovery(items, area, h.fixtures.Popular, h.limit)

	page := h.gridView.Serve(query, scoped,
		filterParams(r),
		sortKeyParam(r, queryservices.SortPopular),
		intParam(r, "page", 0),
		intParam(r, "pageSize", 0),
	)

	respondWithJSON(w, http.StatusOK, discoverResponse{Page: page, Area: area})
}

// SearchDiscovery handles GET /api/discovery/search
func (h *DiscoveryHandler) SearchDiscovery(w http.ResponseWriter, r *http.Request) {
	items, snapshot, ok := h.publishedCatalog(w, r)
	if !ok {
		return
	}

	settings, err := h.preferences.GetSettings(r.Context())
	if err != nil {
		settings = entities.DefaultSettings()
	}

	query := queryservices.NewKulinerQueryService(snapshot)
	page := h.searchView.Serve(query, items,
		filterParams(r),
		sortKeyParam(r, queryservices.SortName),
		intParam(r, "page", 0),
		intParam(r, "pageSize", settings.PaginationSize),
	)

	respondWithJSON(w, http.StatusOK, page)
}

// GetMeta handles GET /api/discovery/meta
func (h *DiscoveryHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"kategori":     h.fixtures.Kategori,
		"provinsiKota": h.fixtures.ProvinsiKota,
		"popular":      h.fixtures.Popular,
		"baru":         h.fixtures.Baru,
	})
}

// publishedCatalog merges the curated fixture entries with the published
// stored entries. A stored entry with a fixture id wins, so edits show up.
func (h *DiscoveryHandler) publishedCatalog(w http.ResponseWriter, r *http.Request) ([]entities.Kuliner, *services.AggregateSnapshot, bool) {
	stored, err := h.catalog.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list kuliner")
		return nil, nil, false
	}

	snapshot, err := h.ratings.Snapshot(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load ratings")
		return nil, nil, false
	}

	byID := make(map[string]int, len(h.fixtures.Kuliner))
	merged := make([]entities.Kuliner, 0, len(h.fixtures.Kuliner)+len(stored))
	for _, item := range h.fixtures.Kuliner {
		byID[item.ID] = len(merged)
		merged = append(merged, item)
	}
	for _, item := range stored {
		if item.Status != entities.StatusPublished {
			continue
		}
		if i, ok := byID[item.ID]; ok {
			merged[i] = item
			continue
		}
		merged = append(merged, item)
	}
	return merged, snapshot, true
}
