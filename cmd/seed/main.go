package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kulinernusantara/backend/internal/adapters/storage"
	"github.com/kulinernusantara/backend/internal/adapters/store"
	redisclient "github.com/kulinernusantara/backend/internal/infrastructure/clients/redis"
	"github.com/kulinernusantara/backend/internal/infrastructure/observability"
	"github.com/kulinernusantara/backend/pkg/config"
)

// Seeds the demo catalog into the store. By default existing data is kept;
// -force overwrites the catalog with the seed set.
func main() {
	force := flag.Bool("force", false, "overwrite an existing catalog with the seed set")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.App.Name+"-seed", cfg.App.Env)

	client, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding requires a reachable redis")
	}
	defer client.Close()

	ctx := context.Background()
	repo := storage.NewKulinerAdapter(store.NewRedisAdapter(client), storage.SeedCatalog())

	if *force {
		if err := repo.Replace(ctx, storage.SeedCatalog()); err != nil {
			log.Fatal().Err(err).Msg("failed to write seed catalog")
		}
		log.Info().Int("items", len(storage.SeedCatalog())).Msg("catalog overwritten with seed set")
		return
	}

	// A read through the adapter yields the seed set on first run; writing
	// the result back persists whatever is current without clobbering edits.
	items, err := repo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read catalog")
	}
	if err := repo.Replace(ctx, items); err != nil {
		log.Fatal().Err(err).Msg("failed to persist catalog")
	}
	log.Info().Int("items", len(items)).Msg("catalog seeded")
}
