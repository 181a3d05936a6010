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

// DraftAdapter implements the DraftRepository interface
type DraftAdapter struct {
	store providers.StoreProvider
}

// NewDraftAdapter creates a new draft adapter
func NewDraftAdapter(store providers.StoreProvider) repositories.DraftRepository {
	return &DraftAdapter{store: store}
}

// Get returns the stored draft, or nil when none exists
func (a *DraftAdapter) Get(ctx context.Context) (*entities.Draft, error) {
	data, err := a.store.Get(ctx, keyDraft)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", keyDraft).Msg("store read failed, treating draft as absent")
		}
		return nil, nil
	}

	var draft entities.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		log.Warn().Err(err).Str("key", keyDraft).Msg("stored draft is not valid JSON, treating as absent")
		return nil, nil
	}
	return &draft, nil
}

// Save replaces the draft slot
func (a *DraftAdapter) Save(ctx context.Context, draft *entities.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		log.Error().Err(err).Str("key", keyDraft).Msg("failed to serialize draft")
		return nil
	}
	if err := a.store.Set(ctx, keyDraft, data); err != nil {
		log.Error().Err(err).Str("key", keyDraft).Msg("failed to write draft")
	}
	return nil
}

// Clear empties the draft slot
func (a *DraftAdapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, keyDraft); err != nil {
		log.Error().Err(err).Str("key", keyDraft).Msg("failed to clear draft")
	}
	return nil
}
