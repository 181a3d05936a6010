package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// syncDraftRepo is safe to share with the debounce timer goroutine.
type syncDraftRepo struct {
	mu    sync.Mutex
	draft *entities.Draft
	saves int
}

func (s *syncDraftRepo) Get(_ context.Context) (*entities.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, nil
}

func (s *syncDraftRepo) Save(_ context.Context, draft *entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = draft
	s.saves++
	return nil
}

func (s *syncDraftRepo) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	return nil
}

func (s *syncDraftRepo) snapshot() (*entities.Draft, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.saves
}

func formNamed(nama string) entities.KulinerForm {
	form := entities.EmptyKulinerForm()
	form.Nama = nama
	return form
}

func TestDraftService_TouchWritesAfterQuietPeriod(t *testing.T) {
	repo := &syncDraftRepo{}
	svc := NewDraftService(repo, 20*time.Millisecond)

	svc.Touch(formNamed("Soto Betawi"))

	draft, saves := repo.snapshot()
	assert.Nil(t, draft, "nothing is written before the quiet period")
	assert.Equal(t, 0, saves)

	time.Sleep(80 * time.Millisecond)

	draft, saves = repo.snapshot()
	require.NotNil(t, draft)
	assert.Equal(t, "Soto Betawi", draft.Data.Nama)
	assert.False(t, draft.Timestamp.IsZero())
	assert.Equal(t, 1, saves)
}

func TestDraftService_BurstCollapsesToLastSnapshot(t *testing.T) {
	repo := &syncDraftRepo{}
	svc := NewDraftService(repo, 30*time.Millisecond)

	svc.Touch(formNamed("S"))
	time.Sleep(5 * time.Millisecond)
	svc.Touch(formNamed("So"))
	time.Sleep(5 * time.Millisecond)
	svc.Touch(formNamed("Soto"))

	time.Sleep(120 * time.Millisecond)

	draft, saves := repo.snapshot()
	require.NotNil(t, draft)
	assert.Equal(t, "Soto", draft.Data.Nama, "only the last snapshot survives")
	assert.Equal(t, 1, saves, "superseded snapshots are never written")
}

func TestDraftService_ClearCancelsPendingWrite(t *testing.T) {
	repo := &syncDraftRepo{}
	svc := NewDraftService(repo, 30*time.Millisecond)

	svc.Touch(formNamed("Batal"))
	require.NoError(t, svc.Clear(context.Background()))

	time.Sleep(100 * time.Millisecond)

	draft, saves := repo.snapshot()
	assert.Nil(t, draft)
	assert.Equal(t, 0, saves, "cancelled snapshot never reaches the store")
}

func TestDraftService_FlushWritesImmediately(t *testing.T) {
	repo := &syncDraftRepo{}
	svc := NewDraftService(repo, time.Hour)

	svc.Touch(formNamed("Terakhir"))
	svc.Flush(context.Background())

	draft, saves := repo.snapshot()
	require.NotNil(t, draft)
	assert.Equal(t, "Terakhir", draft.Data.Nama)
	assert.Equal(t, 1, saves)
}

func TestDraftService_Restore(t *testing.T) {
	repo := &syncDraftRepo{}
	svc := NewDraftService(repo, time.Hour)
	ctx := context.Background()

	form, found, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, entities.EmptyKulinerForm(), form, "empty slot restores a blank form")

	svc.Touch(formNamed("Pempek"))
	svc.Flush(ctx)

	form, found, err = svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Pempek", form.Nama)
}

func TestDraftService_ClearEmptySlotIsNoError(t *testing.T) {
	svc := NewDraftService(&syncDraftRepo{}, time.Hour)
	assert.NoError(t, svc.Clear(context.Background()))
}
