package repositories

import (
	"context"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// PreferenceRepository defines the interface for the simple preference
// scalars: admin settings, the selected area, the saved discovery filter
// state, the bookmarked kuliner ids, the theme, and the simulated-auth role
// marker.
type PreferenceRepository interface {
	GetSettings(ctx context.Context) (entities.Settings, error)
	SaveSettings(ctx context.Context, settings entities.Settings) error
	ResetSettings(ctx context.Context) error

	GetArea(ctx context.Context) (*entities.Area, error)
	SaveArea(ctx context.Context, area entities.Area) error
	ClearArea(ctx context.Context) error

	GetTheme(ctx context.Context) (entities.Theme, error)
	SaveTheme(ctx context.Context, theme entities.Theme) error

	GetRole(ctx context.Context) (entities.Role, error)
	SaveRole(ctx context.Context, role entities.Role) error
	ClearRole(ctx context.Context) error

	GetDiscoveryFilters(ctx context.Context) (*entities.DiscoveryFilters, error)
	SaveDiscoveryFilters(ctx context.Context, filters entities.DiscoveryFilters) error

	GetFavorites(ctx context.Context) ([]string, error)
	ToggleFavorite(ctx context.Context, kulinerID string) (bool, error)
}
