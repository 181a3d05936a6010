package repositories

import (
	"context"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for the reviews-by-kuliner mapping.
type ReviewRepository interface {
	// GetAll returns the full mapping; an empty map on first run.
	GetAll(ctx context.Context) (entities.ReviewsByKuliner, error)

	// ListByKuliner returns the reviews for one entry, newest first.
	ListByKuliner(ctx context.Context, kulinerID string) ([]entities.Review, error)

	// Replace overwrites the whole mapping.
	Replace(ctx context.Context, reviews entities.ReviewsByKuliner) error
}
