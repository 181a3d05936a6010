package repositories

import (
	"context"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// DraftRepository defines the interface for the single outstanding draft slot.
type DraftRepository interface {
	// Get returns the stored draft, or nil when none exists.
	Get(ctx context.Context) (*entities.Draft, error)

	// Save replaces the draft slot.
	Save(ctx context.Context, draft *entities.Draft) error

	// Clear empties the draft slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
