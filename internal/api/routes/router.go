package routes

import (
	"net/http"

	"github.com/kulinernusantara/backend/internal/api/handlers"
	"github.com/kulinernusantara/backend/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	kulinerHandler    *handlers.KulinerHandler
	discoveryHandler  *handlers.DiscoveryHandler
	reviewHandler     *handlers.ReviewHandler
	draftHandler      *handlers.DraftHandler
	preferenceHandler *handlers.PreferenceHandler
}

// NewRouter creates a new router
func NewRouter(
	kulinerHandler *handlers.KulinerHandler,
	discoveryHandler *handlers.DiscoveryHandler,
	reviewHandler *handlers.ReviewHandler,
	draftHandler *handlers.DraftHandler,
	preferenceHandler *handlers.PreferenceHandler,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		kulinerHandler:    kulinerHandler,
		discoveryHandler:  discoveryHandler,
		reviewHandler:     reviewHandler,
		draftHandler:      draftHandler,
		preferenceHandler: preferenceHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Discovery endpoints
	r.mux.HandleFunc("GET /api/discovery", r.discoveryHandler.Discover)
	r.mux.HandleFunc("GET /api/discovery/search", r.discoveryHandler.SearchDiscovery)
	r.mux.HandleFunc("GET /api/discovery/meta", r.discoveryHandler.GetMeta)
	r.mux.HandleFunc("GET /api/discovery/filters", r.preferenceHandler.GetDiscoveryFilters)
	r.mux.HandleFunc("PUT /api/discovery/filters", r.preferenceHandler.UpdateDiscoveryFilters)

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/kuliner", r.kulinerHandler.ListKuliner)
	r.mux.HandleFunc("POST /api/kuliner", r.kulinerHandler.CreateKuliner)
	r.mux.HandleFunc("GET /api/kuliner/stats", r.kulinerHandler.GetCatalogStats)
	r.mux.HandleFunc("GET /api/kuliner/export.csv", r.kulinerHandler.ExportKuliner)
	r.mux.HandleFunc("GET /api/kuliner/{id}", r.kulinerHandler.GetKuliner)
	r.mux.HandleFunc("PUT /api/kuliner/{id}", r.kulinerHandler.UpdateKuliner)
	r.mux.HandleFunc("DELETE /api/kuliner/{id}", r.kulinerHandler.DeleteKuliner)
	r.mux.HandleFunc("POST /api/kuliner/{id}/publish", r.kulinerHandler.PublishKuliner)

	// Review endpoints
	r.mux.HandleFunc("POST /api/kuliner/{id}/reviews", r.reviewHandler.SubmitReview)
	r.mux.HandleFunc("GET /api/kuliner/{id}/reviews", r.reviewHandler.ListReviews)
	r.mux.HandleFunc("GET /api/reviews", r.reviewHandler.ListAllReviews)
	r.mux.HandleFunc("PUT /api/reviews/{id}", r.reviewHandler.UpdateReview)
	r.mux.HandleFunc("DELETE /api/reviews/{id}", r.reviewHandler.DeleteReview)

	// Draft endpoints
	r.mux.HandleFunc("GET /api/draft", r.draftHandler.GetDraft)
	r.mux.HandleFunc("PUT /api/draft", r.draftHandler.TouchDraft)
	r.mux.HandleFunc("DELETE /api/draft", r.draftHandler.ClearDraft)

	// Preference endpoints
	r.mux.HandleFunc("GET /api/settings", r.preferenceHandler.GetSettings)
	r.mux.HandleFunc("PUT /api/settings", r.preferenceHandler.UpdateSettings)
	r.mux.HandleFunc("POST /api/settings/reset", r.preferenceHandler.ResetSettings)
	r.mux.HandleFunc("GET /api/area", r.preferenceHandler.GetArea)
	r.mux.HandleFunc("PUT /api/area", r.preferenceHandler.UpdateArea)
	r.mux.HandleFunc("DELETE /api/area", r.preferenceHandler.ClearArea)
	r.mux.HandleFunc("GET /api/theme", r.preferenceHandler.GetTheme)
	r.mux.HandleFunc("PUT /api/theme", r.preferenceHandler.UpdateTheme)
	r.mux.HandleFunc("GET /api/favorites", r.preferenceHandler.GetFavorites)
	r.mux.HandleFunc("POST /api/favorites/{id}/toggle", r.preferenceHandler.ToggleFavorite)

	// Simulated session endpoints
	r.mux.HandleFunc("GET /api/session", r.preferenceHandler.GetSession)
	r.mux.HandleFunc("POST /api/session", r.preferenceHandler.Login)
	r.mux.HandleFunc("DELETE /api/session", r.preferenceHandler.Logout)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS wraps everything so headers are set even on error responses.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
