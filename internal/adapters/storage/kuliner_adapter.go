package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/providers"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
	apperrors "github.com/kulinernusantara/backend/pkg/errors"
	"github.com/rs/zerolog/log"
)

// KulinerAdapter implements the KulinerRepository interface
type KulinerAdapter struct {
	store providers.StoreProvider
	seed  []entities.Kuliner
}

// NewKulinerAdapter creates a new kuliner adapter. The seed catalog is
// returned on first run, before anything was stored; pass nil to start empty.
func NewKulinerAdapter(store providers.StoreProvider, seed []entities.Kuliner) repositories.KulinerRepository {
	return &KulinerAdapter{
		store: store,
		seed:  seed,
	}
}

// List returns the stored collection, or the seed catalog on first run
func (a *KulinerAdapter) List(ctx context.Context) ([]entities.Kuliner, error) {
	data, err := a.store.Get(ctx, keyItems)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", keyItems).Msg("store read failed, using seed catalog")
		}
		return a.seedCopy(), nil
	}

	var items []entities.Kuliner
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt value is treated the same as an absent one.
		log.Warn().Err(err).Str("key", keyItems).Msg("stored catalog is not valid JSON, using seed catalog")
		return a.seedCopy(), nil
	}
	return items, nil
}

// GetByID returns a single entry from the stored collection
func (a *KulinerAdapter) GetByID(ctx context.Context, id string) (*entities.Kuliner, error) {
	items, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("kuliner not found: " + id)
}

// Replace overwrites the whole collection
func (a *KulinerAdapter) Replace(ctx context.Context, items []entities.Kuliner) error {
	data, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("key", keyItems).Msg("failed to serialize catalog")
		return nil
	}
	if err := a.store.Set(ctx, keyItems, data); err != nil {
		log.Error().Err(err).Str("key", keyItems).Msg("failed to write catalog")
	}
	return nil
}

func (a *KulinerAdapter) seedCopy() []entities.Kuliner {
	if len(a.seed) == 0 {
		return []entities.Kuliner{}
	}
	out := make([]entities.Kuliner, len(a.seed))
	copy(out, a.seed)
	return out
}
