package repositories

import (
	"context"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// KulinerRepository defines the interface for the UMKM-authored catalog
// collection. The collection is stored as one value; every mutation is a
// whole-collection replacement.
type KulinerRepository interface {
	// List returns the stored collection, or the seed catalog on first run.
	List(ctx context.Context) ([]entities.Kuliner, error)

	// GetByID returns a single entry from the stored collection.
	GetByID(ctx context.Context, id string) (*entities.Kuliner, error)

	// Replace overwrites the whole collection.
	Replace(ctx context.Context, items []entities.Kuliner) error
}
