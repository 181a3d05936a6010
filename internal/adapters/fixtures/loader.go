// Package fixtures loads the static, read-only JSON datasets that back the
// public discovery experience. Fixtures resolve once per call, with no retry;
// any failure degrades to an empty dataset plus a logged diagnostic so the
// application stays usable offline.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/providers"
	"github.com/kulinernusantara/backend/pkg/config"
	"github.com/rs/zerolog/log"
)

const (
	fileKuliner      = "kuliner.json"
	fileKategori     = "kategori.json"
	fileProvinsiKota = "provinsi_kota.json"
	filePopular      = "popular.json"
	fileBaru         = "baru.json"
)

// fixtureKuliner is the fixture-side shape of a catalog item. The public
// dataset names things slightly differently from the authored collection
// (title/images rather than nama/foto); the loader normalizes.
type fixtureKuliner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Kategori  string    `json:"kategori"`
	Provinsi  string    `json:"provinsi"`
	Kota      string    `json:"kota"`
	HargaMin  *int      `json:"hargaMin,omitempty"`
	HargaMax  *int      `json:"hargaMax,omitempty"`
	Rating    float64   `json:"rating"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *fixtureKuliner) toEntity() entities.Kuliner {
	return entities.Kuliner{
		ID:        f.ID,
		Nama:      f.Title,
		Kategori:  f.Kategori,
		Provinsi:  f.Provinsi,
		Kota:      f.Kota,
		HargaMin:  f.HargaMin,
		HargaMax:  f.HargaMax,
		Foto:      f.Images,
		Rating:    f.Rating,
		Status:    entities.StatusPublished,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// Loader implements the FixtureProvider interface. Fixtures are fetched from
// BaseURL when configured, otherwise read from the local directory.
type Loader struct {
	baseURL    string
	dir        string
	httpClient *http.Client
}

// NewLoader creates a new fixture loader
func NewLoader(cfg *config.FixturesConfig) *Loader {
	return &Loader{
		baseURL: cfg.BaseURL,
		dir:     cfg.Dir,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LoadAll resolves every fixture once. Individual failures are logged and
// surfaced as empty values within the set, never as an error.
func (l *Loader) LoadAll(ctx context.Context) *providers.FixtureSet {
	set := &providers.FixtureSet{
		ProvinsiKota: map[string][]string{},
		Kategori:     []string{},
		Kuliner:      []entities.Kuliner{},
		Popular:      []string{},
		Baru:         []string{},
	}

	var raw []fixtureKuliner
	if loadInto(ctx, l, fileKuliner, &raw) {
		set.Kuliner = make([]entities.Kuliner, 0, len(raw))
		for i := range raw {
			set.Kuliner = append(set.Kuliner, raw[i].toEntity())
		}
	}
	loadInto(ctx, l, fileKategori, &set.Kategori)
	loadInto(ctx, l, fileProvinsiKota, &set.ProvinsiKota)
	loadInto(ctx, l, filePopular, &set.Popular)
	loadInto(ctx, l, fileBaru, &set.Baru)

	return set
}

// loadInto reads one fixture into out, reporting whether it succeeded.
func loadInto[T any](ctx context.Context, l *Loader, name string, out *T) bool {
	data, err := l.read(ctx, name)
	if err != nil {
		log.Warn().Err(err).Str("fixture", name).Msg("fixture load failed, continuing with empty data")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("fixture", name).Msg("fixture is not valid JSON, continuing with empty data")
		return false
	}
	return true
}

func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	if l.baseURL != "" {
		return l.fetch(ctx, name)
	}
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, name string) ([]byte, error) {
	url := l.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fixture request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
