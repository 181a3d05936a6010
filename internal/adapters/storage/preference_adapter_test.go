package storage_test

import (
	"context"
	"testing"

	"github.com/kulinernusantara/backend/internal/adapters/storage"
	"github.com/kulinernusantara/backend/internal/adapters/store"
	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceAdapter_SettingsDefaults(t *testing.T) {
	repo := storage.NewPreferenceAdapter(store.NewMemoryAdapter())

	settings, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeLight, settings.Theme)
	assert.Equal(t, 10, settings.PaginationSize)
	assert.Equal(t, "id", settings.Language)
}

func TestPreferenceAdapter_SettingsSaveAndReset(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewPreferenceAdapter(store.NewMemoryAdapter())

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	settings.Theme = entities.ThemeDark
	settings.PaginationSize = 25
	require.NoError(t, repo.SaveSettings(ctx, settings))

	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeDark, got.Theme)
	assert.Equal(t, 25, got.PaginationSize)

	require.NoError(t, repo.ResetSettings(ctx))
	got, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSettings(), got)
}

func TestPreferenceAdapter_AreaLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewPreferenceAdapter(store.NewMemoryAdapter())

	area, err := repo.GetArea(ctx)
	require.NoError(t, err)
	assert.Nil(t, area)

	require.NoError(t, repo.SaveArea(ctx, entities.Area{Provinsi: "jawa-barat", Kota: "Bandung"}))
	area, err = repo.GetArea(ctx)
	require.NoError(t, err)
	require.NotNil(t, area)
	assert.Equal(t, "Bandung", area.Kota)

	require.NoError(t, repo.ClearArea(ctx))
	area, err = repo.GetArea(ctx)
	require.NoError(t, err)
	assert.Nil(t, area)
}

func TestPreferenceAdapter_RoleDefaultsToVisitor(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryAdapter()
	repo := storage.NewPreferenceAdapter(kv)

	role, err := repo.GetRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleVisitor, role)

	// An unknown stored role string falls back to visitor instead of being
	// trusted.
	require.NoError(t, kv.Set(ctx, "authRole", []byte(`"superuser"`)))
	role, err = repo.GetRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleVisitor, role)

	require.NoError(t, repo.SaveRole(ctx, entities.RoleUMKM))
	role, err = repo.GetRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleUMKM, role)
}

func TestPreferenceAdapter_FavoritesToggle(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewPreferenceAdapter(store.NewMemoryAdapter())

	ids, err := repo.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	on, err := repo.ToggleFavorite(ctx, "seed-rendang")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = repo.ToggleFavorite(ctx, "seed-pempek")
	require.NoError(t, err)
	assert.True(t, on)

	ids, err = repo.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-rendang", "seed-pempek"}, ids, "insertion order is kept")

	// Toggling again removes the bookmark.
	on, err = repo.ToggleFavorite(ctx, "seed-rendang")
	require.NoError(t, err)
	assert.False(t, on)

	ids, err = repo.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-pempek"}, ids)
}

func TestPreferenceAdapter_FavoritesCorruptDataReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryAdapter()
	repo := storage.NewPreferenceAdapter(kv)

	require.NoError(t, kv.Set(ctx, "kulinerFavorites", []byte("{not json")))

	ids, err := repo.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	on, err := repo.ToggleFavorite(ctx, "seed-rendang")
	require.NoError(t, err)
	assert.True(t, on)

	ids, err = repo.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-rendang"}, ids)
}

func TestPreferenceAdapter_DiscoveryFilters(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewPreferenceAdapter(store.NewMemoryAdapter())

	filters, err := repo.GetDiscoveryFilters(ctx)
	require.NoError(t, err)
	assert.Nil(t, filters)

	maxPrice := 30000
	require.NoError(t, repo.SaveDiscoveryFilters(ctx, entities.DiscoveryFilters{
		Kategori: []string{"minuman"},
		MaxPrice: &maxPrice,
		Sort:     "terbaru",
	}))

	filters, err = repo.GetDiscoveryFilters(ctx)
	require.NoError(t, err)
	require.NotNil(t, filters)
	assert.Equal(t, []string{"minuman"}, filters.Kategori)
	require.NotNil(t, filters.MaxPrice)
	assert.Equal(t, 30000, *filters.MaxPrice)
}
