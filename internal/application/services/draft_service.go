package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
)

// DefaultDraftDebounce is the quiet period before a form snapshot is written.
const DefaultDraftDebounce = time.Second

// DraftService debounces form snapshots into the single draft slot. Each
// snapshot rearms one timer; only the snapshot current when the timer fires
// is written, so a burst of edits produces one store write.
type DraftService struct {
	repo  repositories.DraftRepository
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *entities.KulinerForm
}

// NewDraftService creates a new draft service. A non-positive delay falls
// back to DefaultDraftDebounce.
func NewDraftService(repo repositories.DraftRepository, delay time.Duration) *DraftService {
	if delay <= 0 {
		delay = DefaultDraftDebounce
	}
	return &DraftService{repo: repo, delay: delay}
}

// Touch records a new form snapshot and rearms the debounce timer. A
// snapshot superseded before the timer fires is never written.
func (s *DraftService) Touch(form entities.KulinerForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &form
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flushPending)
}

func (s *DraftService) flushPending() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if pending == nil {
		return
	}
	s.save(context.Background(), pending)
}

// Flush writes any pending snapshot immediately. Used on shutdown so the
// last keystrokes are not lost to the debounce window.
func (s *DraftService) Flush(ctx context.Context) {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if pending == nil {
		return
	}
	s.save(ctx, pending)
}

// Restore returns the saved draft form when one exists. The second return
// reports whether a draft was found; callers only offer restoration on the
// new-entry form.
func (s *DraftService) Restore(ctx context.Context) (entities.KulinerForm, bool, error) {
	draft, err := s.repo.Get(ctx)
	if err != nil {
		return entities.EmptyKulinerForm(), false, err
	}
	if draft == nil {
		return entities.EmptyKulinerForm(), false, nil
	}
	return draft.Data, true, nil
}

// Clear drops the pending snapshot and empties the draft slot. Clearing with
// nothing saved is not an error.
func (s *DraftService) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.repo.Clear(ctx)
}

// save is best effort: an autosave that fails to persist only logs.
func (s *DraftService) save(ctx context.Context, form *entities.KulinerForm) {
	draft := &entities.Draft{
		Data:      *form,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, draft); err != nil {
		log.Warn().Err(err).Msg("draft autosave failed")
	}
}
