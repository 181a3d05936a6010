package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
	"github.com/kulinernusantara/backend/internal/validation"
	"github.com/kulinernusantara/backend/pkg/errors"
)

// KulinerService handles the UMKM-authored catalog: create, update, publish
// and delete. Mutations rewrite the whole stored collection.
type KulinerService struct {
	repo   repositories.KulinerRepository
	drafts repositories.DraftRepository
}

// NewKulinerService creates a new kuliner service
func NewKulinerService(repo repositories.KulinerRepository, drafts repositories.DraftRepository) *KulinerService {
	return &KulinerService{repo: repo, drafts: drafts}
}

// List returns the stored catalog.
func (s *KulinerService) List(ctx context.Context) ([]entities.Kuliner, error) {
	return s.repo.List(ctx)
}

// Get returns one entry by id.
func (s *KulinerService) Get(ctx context.Context, id string) (*entities.Kuliner, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates a submitted form and appends a new entry to the catalog.
// A successful create clears the outstanding draft; the draft belongs to the
// new-entry form only.
func (s *KulinerService) Create(ctx context.Context, form entities.KulinerForm) (*entities.Kuliner, error) {
	entry, err := s.fromForm(form)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.ID = uuid.New().String()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	items = append(items, *entry)
	if err := s.repo.Replace(ctx, items); err != nil {
		return nil, err
	}

	if err := s.drafts.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear draft after create")
	}
	return entry, nil
}

// Update validates a form and overwrites an existing entry. The draft slot is
// untouched: edits never pass through the autosave path.
func (s *KulinerService) Update(ctx context.Context, id string, form entities.KulinerForm) (*entities.Kuliner, error) {
	entry, err := s.fromForm(form)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		entry.ID = id
		entry.Rating = items[i].Rating
		entry.CreatedAt = items[i].CreatedAt
		entry.UpdatedAt = time.Now().UTC()
		items[i] = *entry
		if err := s.repo.Replace(ctx, items); err != nil {
			return nil, err
		}
		return entry, nil
	}
	return nil, errors.NewNotFoundError("kuliner not found")
}

// Delete removes an entry. Reviews referencing the removed id stay in the
// review store and are tolerated as orphans.
func (s *KulinerService) Delete(ctx context.Context, id string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i:i], items[i+1:]...)
		return s.repo.Replace(ctx, items)
	}
	return errors.NewNotFoundError("kuliner not found")
}

// Publish flips a draft entry to published. Publishing an already published
// entry is a no-op.
func (s *KulinerService) Publish(ctx context.Context, id string) (*entities.Kuliner, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		if items[i].Status != entities.StatusPublished {
			items[i].Status = entities.StatusPublished
			items[i].UpdatedAt = time.Now().UTC()
			if err := s.repo.Replace(ctx, items); err != nil {
				return nil, err
			}
		}
		entry := items[i]
		return &entry, nil
	}
	return nil, errors.NewNotFoundError("kuliner not found")
}

// fromForm parses and validates the raw form snapshot. Numeric fields arrive
// as typed text; parse failures surface on the same field map as the
// declarative rules.
func (s *KulinerService) fromForm(form entities.KulinerForm) (*entities.Kuliner, error) {
	fields := make(map[string]string)

	hargaMin := parseOptionalInt(form.HargaMin, "hargaMin", "Harga minimal harus angka >= 0", fields)
	hargaMax := parseOptionalInt(form.HargaMax, "hargaMax", "Harga maksimal harus angka >= 0", fields)
	lat := parseOptionalFloat(form.Lat, "lat", fields)
	lng := parseOptionalFloat(form.Lng, "lng", fields)

	sub := &validation.KulinerSubmission{
		Nama:      strings.TrimSpace(form.Nama),
		Kategori:  strings.TrimSpace(form.Kategori),
		Deskripsi: strings.TrimSpace(form.Deskripsi),
		Provinsi:  strings.TrimSpace(form.Provinsi),
		Kota:      strings.TrimSpace(form.Kota),
		HargaMin:  hargaMin,
		HargaMax:  hargaMax,
		Bahan:     form.Bahan,
		Langkah:   form.Langkah,
	}
	for key, msg := range validation.ValidateKuliner(sub) {
		if _, taken := fields[key]; !taken {
			fields[key] = msg
		}
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	status := form.Status
	if !status.IsValid() {
		status = entities.StatusDraft
	}

	return &entities.Kuliner{
		Nama:      sub.Nama,
		Kategori:  sub.Kategori,
		Deskripsi: sub.Deskripsi,
		Provinsi:  sub.Provinsi,
		Kota:      sub.Kota,
		HargaMin:  hargaMin,
		HargaMax:  hargaMax,
		Bahan:     trimNonBlank(form.Bahan),
		Langkah:   trimNonBlank(form.Langkah),
		Foto:      form.Foto,
		Lat:       lat,
		Lng:       lng,
		Status:    status,
	}, nil
}

func parseOptionalInt(raw, key, msg string, fields map[string]string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[key] = msg
		return nil
	}
	return &v
}

func parseOptionalFloat(raw, key string, fields map[string]string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fields[key] = "Koordinat tidak valid"
		return nil
	}
	return &v
}

func trimNonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
