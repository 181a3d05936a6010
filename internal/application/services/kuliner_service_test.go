package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/pkg/errors"
)

type stubKulinerRepo struct {
	items []entities.Kuliner
}

func (s *stubKulinerRepo) List(_ context.Context) ([]entities.Kuliner, error) {
	return s.items, nil
}

func (s *stubKulinerRepo) GetByID(_ context.Context, id string) (*entities.Kuliner, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, errors.NewNotFoundError("kuliner not found")
}

func (s *stubKulinerRepo) Replace(_ context.Context, items []entities.Kuliner) error {
	s.items = items
	return nil
}

type stubDraftRepo struct {
	draft  *entities.Draft
	saves  int
	clears int
}

func (s *stubDraftRepo) Get(_ context.Context) (*entities.Draft, error) {
	return s.draft, nil
}

func (s *stubDraftRepo) Save(_ context.Context, draft *entities.Draft) error {
	s.draft = draft
	s.saves++
	return nil
}

func (s *stubDraftRepo) Clear(_ context.Context) error {
	s.draft = nil
	s.clears++
	return nil
}

func validForm() entities.KulinerForm {
	return entities.KulinerForm{
		Nama:      "Gudeg Yu Djum",
		Kategori:  "Makanan Berat",
		Deskripsi: strings.Repeat("Gudeg nangka muda dimasak santan berjam-jam. ", 4),
		Provinsi:  "DI Yogyakarta",
		Kota:      "Yogyakarta",
		HargaMin:  "15000",
		HargaMax:  "30000",
		Bahan:     []string{"nangka muda", "santan", ""},
		Langkah:   []string{"rebus nangka", "masak dengan santan"},
		Foto:      []string{"https://img.example/gudeg.jpg"},
		Status:    entities.StatusDraft,
	}
}

func TestKulinerService_CreateClearsDraft(t *testing.T) {
	repo := &stubKulinerRepo{}
	drafts := &stubDraftRepo{draft: &entities.Draft{Data: entities.EmptyKulinerForm()}}
	svc := NewKulinerService(repo, drafts)

	entry, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Gudeg Yu Djum", entry.Nama)
	require.NotNil(t, entry.HargaMin)
	assert.Equal(t, 15000, *entry.HargaMin)
	assert.Equal(t, []string{"nangka muda", "santan"}, entry.Bahan, "blank rows are dropped")
	assert.False(t, entry.CreatedAt.IsZero())
	require.Len(t, repo.items, 1)
	assert.Equal(t, 1, drafts.clears, "draft is cleared after a successful create")
}

func TestKulinerService_CreateRejectsInvalidForm(t *testing.T) {
	repo := &stubKulinerRepo{}
	drafts := &stubDraftRepo{}
	svc := NewKulinerService(repo, drafts)

	form := validForm()
	form.Nama = "ab"
	form.HargaMin = "bukan-angka"

	_, err := svc.Create(context.Background(), form)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Fields, "nama")
	assert.Equal(t, "Harga minimal harus angka >= 0", appErr.Fields["hargaMin"])
	assert.Empty(t, repo.items, "nothing is persisted on validation failure")
	assert.Equal(t, 0, drafts.clears, "draft survives a failed submit")
}

func TestKulinerService_UpdatePreservesIdentityAndBaseline(t *testing.T) {
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	repo := &stubKulinerRepo{items: []entities.Kuliner{{
		ID:        "k-1",
		Nama:      "Sate Lama",
		Rating:    4.7,
		Status:    entities.StatusPublished,
		CreatedAt: created,
		UpdatedAt: created,
	}}}
	drafts := &stubDraftRepo{draft: &entities.Draft{Data: entities.EmptyKulinerForm()}}
	svc := NewKulinerService(repo, drafts)

	form := validForm()
	form.Status = entities.StatusPublished

	entry, err := svc.Update(context.Background(), "k-1", form)
	require.NoError(t, err)

	assert.Equal(t, "k-1", entry.ID)
	assert.Equal(t, 4.7, entry.Rating, "baseline rating is kept across edits")
	assert.Equal(t, created, entry.CreatedAt)
	assert.True(t, entry.UpdatedAt.After(created))
	assert.NotNil(t, drafts.draft, "edits never touch the draft slot")
}

func TestKulinerService_UpdateUnknownID(t *testing.T) {
	svc := NewKulinerService(&stubKulinerRepo{}, &stubDraftRepo{})

	_, err := svc.Update(context.Background(), "missing", validForm())

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestKulinerService_Delete(t *testing.T) {
	repo := &stubKulinerRepo{items: []entities.Kuliner{
		{ID: "k-1"}, {ID: "k-2"},
	}}
	svc := NewKulinerService(repo, &stubDraftRepo{})

	require.NoError(t, svc.Delete(context.Background(), "k-1"))
	require.Len(t, repo.items, 1)
	assert.Equal(t, "k-2", repo.items[0].ID)

	err := svc.Delete(context.Background(), "k-1")
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestKulinerService_Publish(t *testing.T) {
	repo := &stubKulinerRepo{items: []entities.Kuliner{{
		ID:     "k-1",
		Status: entities.StatusDraft,
	}}}
	svc := NewKulinerService(repo, &stubDraftRepo{})

	entry, err := svc.Publish(context.Background(), "k-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPublished, entry.Status)
	assert.Equal(t, entities.StatusPublished, repo.items[0].Status)

	again, err := svc.Publish(context.Background(), "k-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPublished, again.Status)
}
