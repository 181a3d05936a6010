package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/providers"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
	"github.com/rs/zerolog/log"
)

// ReviewAdapter implements the ReviewRepository interface
type ReviewAdapter struct {
	store providers.StoreProvider
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(store providers.StoreProvider) repositories.ReviewRepository {
	return &ReviewAdapter{store: store}
}

// GetAll returns the full reviews-by-kuliner mapping
func (a *ReviewAdapter) GetAll(ctx context.Context) (entities.ReviewsByKuliner, error) {
	data, err := a.store.Get(ctx, keyReviews)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", keyReviews).Msg("store read failed, using empty review map")
		}
		return entities.ReviewsByKuliner{}, nil
	}

	var reviews entities.ReviewsByKuliner
	if err := json.Unmarshal(data, &reviews); err != nil {
		log.Warn().Err(err).Str("key", keyReviews).Msg("stored reviews are not valid JSON, using empty review map")
		return entities.ReviewsByKuliner{}, nil
	}
	if reviews == nil {
		reviews = entities.ReviewsByKuliner{}
	}
	return reviews, nil
}

// ListByKuliner returns the reviews for one entry, newest first
func (a *ReviewAdapter) ListByKuliner(ctx context.Context, kulinerID string) ([]entities.Review, error) {
	all, err := a.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return all[kulinerID], nil
}

// Replace overwrites the whole mapping
func (a *ReviewAdapter) Replace(ctx context.Context, reviews entities.ReviewsByKuliner) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		log.Error().Err(err).Str("key", keyReviews).Msg("failed to serialize reviews")
		return nil
	}
	if err := a.store.Set(ctx, keyReviews, data); err != nil {
		log.Error().Err(err).Str("key", keyReviews).Msg("failed to write reviews")
	}
	return nil
}
