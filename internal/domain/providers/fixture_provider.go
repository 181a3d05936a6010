package providers

import (
	"context"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// FixtureSet is the static, read-only dataset backing the public discovery
// experience. A failed load yields the zero value, never an error: the
// application must stay usable with empty data.
type FixtureSet struct {
	ProvinsiKota map[string][]string `json:"provinsiKota"`
	Kategori     []string            `json:"kategori"`
	Kuliner      []entities.Kuliner  `json:"kuliner"`
	Popular      []string            `json:"popular"`
	Baru         []string            `json:"baru"`
}

// FixtureProvider loads the static JSON fixtures.
type FixtureProvider interface {
	// LoadAll resolves every fixture once. Individual load failures are
	// logged and surfaced as empty slices/maps within the set.
	LoadAll(ctx context.Context) *FixtureSet
}
