package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
	"github.com/kulinernusantara/backend/pkg/errors"
)

// ReviewService handles review submission and the admin moderation
// operations. Every mutation rewrites the whole reviews-by-kuliner mapping.
type ReviewService struct {
	reviews repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Submit validates and stores a new review, prepending it so the newest
// review is always first.
func (s *ReviewService) Submit(ctx context.Context, kulinerID string, rating int, text string) (*entities.Review, error) {
	fields := make(map[string]string)
	if rating < 1 || rating > 5 {
		fields["rating"] = "Rating harus antara 1 sampai 5"
	}
	if strings.TrimSpace(text) == "" {
		fields["text"] = "Ulasan tidak boleh kosong"
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	review := entities.Review{
		ID:        uuid.New().String(),
		KulinerID: kulinerID,
		Rating:    rating,
		Text:      strings.TrimSpace(text),
		Time:      time.Now().UTC(),
	}
	all[kulinerID] = append([]entities.Review{review}, all[kulinerID]...)

	if err := s.reviews.Replace(ctx, all); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByKuliner returns one entry's reviews, newest first.
func (s *ReviewService) ListByKuliner(ctx context.Context, kulinerID string) ([]entities.Review, error) {
	return s.reviews.ListByKuliner(ctx, kulinerID)
}

// Edit updates a review's rating and text in place, keeping its position.
func (s *ReviewService) Edit(ctx context.Context, reviewID string, rating int, text string) (*entities.Review, error) {
	fields := make(map[string]string)
	if rating < 1 || rating > 5 {
		fields["rating"] = "Rating harus antara 1 sampai 5"
	}
	if strings.TrimSpace(text) == "" {
		fields["text"] = "Ulasan tidak boleh kosong"
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for kulinerID, list := range all {
		for i := range list {
			if list[i].ID != reviewID {
				continue
			}
			list[i].Rating = rating
			list[i].Text = strings.TrimSpace(text)
			all[kulinerID] = list
			if err := s.reviews.Replace(ctx, all); err != nil {
				return nil, err
			}
			updated := list[i]
			return &updated, nil
		}
	}
	return nil, errors.NewNotFoundError("review not found")
}

// Delete removes a review. The affected entry's displayed rating falls back
// to its baseline once its last review is gone.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return err
	}

	for kulinerID, list := range all {
		for i := range list {
			if list[i].ID != reviewID {
				continue
			}
			all[kulinerID] = append(list[:i:i], list[i+1:]...)
			if len(all[kulinerID]) == 0 {
				delete(all, kulinerID)
			}
			return s.reviews.Replace(ctx, all)
		}
	}
	return errors.NewNotFoundError("review not found")
}

// ReviewListParams controls the admin review listing.
type ReviewListParams struct {
	// Search matches case-insensitively against the review text and the
	// joined kuliner name.
	Search string
	// Oldest flips the default newest-first ordering.
	Oldest bool
}

// ListAll flattens the mapping into a single list joined with kuliner names
// for the admin table. Orphaned reviews keep their stored id as the name.
func (s *ReviewService) ListAll(ctx context.Context, nameByID map[string]string, params ReviewListParams) ([]entities.ReviewDetail, error) {
	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]entities.ReviewDetail, 0)
	needle := strings.ToLower(strings.TrimSpace(params.Search))
	for kulinerID, list := range all {
		name, ok := nameByID[kulinerID]
		if !ok {
			name = kulinerID
		}
		for _, review := range list {
			if needle != "" &&
				!strings.Contains(strings.ToLower(review.Text), needle) &&
				!strings.Contains(strings.ToLower(name), needle) {
				continue
			}
			details = append(details, entities.ReviewDetail{Review: review, KulinerNama: name})
		}
	}

	sort.SliceStable(details, func(i, j int) bool {
		if params.Oldest {
			return details[i].Time.Before(details[j].Time)
		}
		return details[i].Time.After(details[j].Time)
	})
	return details, nil
}
