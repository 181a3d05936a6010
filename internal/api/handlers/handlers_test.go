package handlers

import (
	"time"

	"github.com/kulinernusantara/backend/internal/adapters/storage"
	"github.com/kulinernusantara/backend/internal/adapters/store"
	"github.com/kulinernusantara/backend/internal/application/services"
	"github.com/kulinernusantara/backend/internal/domain/providers"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
)

// testDeps wires the full service stack over the in-memory store, seeded
// with the demo catalog.
type testDeps struct {
	kuliner     *services.KulinerService
	reviews     *services.ReviewService
	ratings     *services.RatingService
	drafts      *services.DraftService
	preferences repositories.PreferenceRepository
	fixtures    *providers.FixtureSet
}

func newTestDeps() *testDeps {
	mem := store.NewMemoryAdapter()
	kulinerRepo := storage.NewKulinerAdapter(mem, storage.SeedCatalog())
	reviewRepo := storage.NewReviewAdapter(mem)
	draftRepo := storage.NewDraftAdapter(mem)
	prefRepo := storage.NewPreferenceAdapter(mem)

	return &testDeps{
		kuliner:     services.NewKulinerService(kulinerRepo, draftRepo),
		reviews:     services.NewReviewService(reviewRepo),
		ratings:     services.NewRatingService(reviewRepo),
		drafts:      services.NewDraftService(draftRepo, 10*time.Millisecond),
		preferences: prefRepo,
		fixtures:    &providers.FixtureSet{},
	}
}
