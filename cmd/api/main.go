package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kulinernusantara/backend/internal/adapters/fixtures"
	"github.com/kulinernusantara/backend/internal/adapters/storage"
	"github.com/kulinernusantara/backend/internal/adapters/store"
	"github.com/kulinernusantara/backend/internal/api/handlers"
	"github.com/kulinernusantara/backend/internal/api/routes"
	"github.com/kulinernusantara/backend/internal/application/services"
	"github.com/kulinernusantara/backend/internal/domain/providers"
	redisclient "github.com/kulinernusantara/backend/internal/infrastructure/clients/redis"
	"github.com/kulinernusantara/backend/internal/infrastructure/observability"
	"github.com/kulinernusantara/backend/pkg/config"
	"github.com/kulinernusantara/backend/pkg/retry"
)

func main() {
	// Load .env if present; environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.App.Name, cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect the store. Redis is preferred; when it stays unreachable the
	// service runs on the in-memory store so browsing still works, with
	// persistence lost across restarts.
	kvStore, redisClient := connectStore(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Static fixtures; failures degrade to empty data
	fixtureSet := fixtures.NewLoader(&cfg.Fixtures).LoadAll(ctx)
	log.Info().
		Int("kuliner", len(fixtureSet.Kuliner)).
		Int("kategori", len(fixtureSet.Kategori)).
		Msg("fixtures loaded")

	// Repositories over the store
	kulinerRepo := storage.NewKulinerAdapter(kvStore, storage.SeedCatalog())
	reviewRepo := storage.NewReviewAdapter(kvStore)
	draftRepo := storage.NewDraftAdapter(kvStore)
	preferenceRepo := storage.NewPreferenceAdapter(kvStore)

	// Application services
	kulinerService := services.NewKulinerService(kulinerRepo, draftRepo)
	reviewService := services.NewReviewService(reviewRepo)
	ratingService := services.NewRatingService(reviewRepo)
	draftService := services.NewDraftService(draftRepo, services.DefaultDraftDebounce)

	// Handlers
	kulinerHandler := handlers.NewKulinerHandler(kulinerService, reviewService, ratingService, preferenceRepo)
	discoveryHandler := handlers.NewDiscoveryHandler(
		kulinerService, ratingService, preferenceRepo, fixtureSet, cfg.Catalog.DiscoveryLimit)
	reviewHandler := handlers.NewReviewHandler(reviewService, kulinerService)
	draftHandler := handlers.NewDraftHandler(draftService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceRepo)

	router := routes.NewRouter(
		kulinerHandler,
		discoveryHandler,
		reviewHandler,
		draftHandler,
		preferenceHandler,
	)

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Flush any draft still inside the debounce window
	draftService.Flush(shutdownCtx)

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

// connectStore dials Redis with backoff and falls back to the in-memory
// store when it never answers.
func connectStore(ctx context.Context, cfg *config.Config) (providers.StoreProvider, *redisclient.Client) {
	var client *redisclient.Client
	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		var dialErr error
		client, dialErr = redisclient.NewClient(&cfg.Redis)
		return dialErr
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory store")
		return store.NewMemoryAdapter(), nil
	}

	log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("redis connected")
	return store.NewRedisAdapter(client), client
}
