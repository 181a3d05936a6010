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

// PreferenceAdapter implements the PreferenceRepository interface
type PreferenceAdapter struct {
	store providers.StoreProvider
}

// NewPreferenceAdapter creates a new preference adapter
func NewPreferenceAdapter(store providers.StoreProvider) repositories.PreferenceRepository {
	return &PreferenceAdapter{store: store}
}

// GetSettings returns the stored admin settings, or the defaults
func (a *PreferenceAdapter) GetSettings(ctx context.Context) (entities.Settings, error) {
	settings := entities.DefaultSettings()
	a.read(ctx, keySettings, &settings)
	if !settings.Theme.IsValid() {
		settings.Theme = entities.ThemeLight
	}
	if settings.PaginationSize <= 0 {
		settings.PaginationSize = entities.DefaultSettings().PaginationSize
	}
	return settings, nil
}

// SaveSettings replaces the stored admin settings
func (a *PreferenceAdapter) SaveSettings(ctx context.Context, settings entities.Settings) error {
	a.write(ctx, keySettings, settings)
	return nil
}

// ResetSettings removes the stored admin settings so defaults apply again
func (a *PreferenceAdapter) ResetSettings(ctx context.Context) error {
	if err := a.store.Delete(ctx, keySettings); err != nil {
		log.Error().Err(err).Str("key", keySettings).Msg("failed to reset settings")
	}
	return nil
}

// GetArea returns the saved discovery area, or nil when none is selected
func (a *PreferenceAdapter) GetArea(ctx context.Context) (*entities.Area, error) {
	var area entities.Area
	if !a.read(ctx, keyArea, &area) {
		return nil, nil
	}
	return &area, nil
}

// SaveArea replaces the saved discovery area
func (a *PreferenceAdapter) SaveArea(ctx context.Context, area entities.Area) error {
	a.write(ctx, keyArea, area)
	return nil
}

// ClearArea removes the saved discovery area
func (a *PreferenceAdapter) ClearArea(ctx context.Context) error {
	if err := a.store.Delete(ctx, keyArea); err != nil {
		log.Error().Err(err).Str("key", keyArea).Msg("failed to clear area")
	}
	return nil
}

// GetTheme returns the saved theme, defaulting to light
func (a *PreferenceAdapter) GetTheme(ctx context.Context) (entities.Theme, error) {
	var theme entities.Theme
	if !a.read(ctx, keyTheme, &theme) || !theme.IsValid() {
		return entities.ThemeLight, nil
	}
	return theme, nil
}

// SaveTheme replaces the saved theme
func (a *PreferenceAdapter) SaveTheme(ctx context.Context, theme entities.Theme) error {
	a.write(ctx, keyTheme, theme)
	return nil
}

// GetRole returns the session role marker, defaulting to visitor
func (a *PreferenceAdapter) GetRole(ctx context.Context) (entities.Role, error) {
	var role entities.Role
	if !a.read(ctx, keyRole, &role) || !role.IsValid() {
		return entities.RoleVisitor, nil
	}
	return role, nil
}

// SaveRole replaces the session role marker
func (a *PreferenceAdapter) SaveRole(ctx context.Context, role entities.Role) error {
	a.write(ctx, keyRole, role)
	return nil
}

// ClearRole removes the session role marker
func (a *PreferenceAdapter) ClearRole(ctx context.Context) error {
	if err := a.store.Delete(ctx, keyRole); err != nil {
		log.Error().Err(err).Str("key", keyRole).Msg("failed to clear role")
	}
	return nil
}

// GetDiscoveryFilters returns the saved discovery filter state, or nil
func (a *PreferenceAdapter) GetDiscoveryFilters(ctx context.Context) (*entities.DiscoveryFilters, error) {
	var filters entities.DiscoveryFilters
	if !a.read(ctx, keyFilters, &filters) {
		return nil, nil
	}
	return &filters, nil
}

// SaveDiscoveryFilters replaces the saved discovery filter state
func (a *PreferenceAdapter) SaveDiscoveryFilters(ctx context.Context, filters entities.DiscoveryFilters) error {
	a.write(ctx, keyFilters, filters)
	return nil
}

// GetFavorites returns the bookmarked kuliner ids, in the order they were
// added. Absent or corrupt data reads as no bookmarks.
func (a *PreferenceAdapter) GetFavorites(ctx context.Context) ([]string, error) {
	var ids []string
	a.read(ctx, keyFavs, &ids)
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ToggleFavorite adds the id to the bookmark list, or removes it when
// already present, and replaces the stored list wholesale. The returned bool
// reports whether the id is bookmarked after the toggle.
func (a *PreferenceAdapter) ToggleFavorite(ctx context.Context, kulinerID string) (bool, error) {
	ids, _ := a.GetFavorites(ctx)
	kept := ids[:0]
	removed := false
	for _, id := range ids {
		if id == kulinerID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, kulinerID)
	}
	a.write(ctx, keyFavs, kept)
	return !removed, nil
}

// read unmarshals the value under key into out. Returns false when the key is
// absent, unreadable, or corrupt; all three mean "use the default".
func (a *PreferenceAdapter) read(ctx context.Context, key string, out any) bool {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("store read failed, using default")
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored value is not valid JSON, using default")
		return false
	}
	return true
}

func (a *PreferenceAdapter) write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to serialize value")
		return
	}
	if err := a.store.Set(ctx, key, data); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write value")
	}
}
