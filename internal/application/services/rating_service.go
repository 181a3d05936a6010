package services

import (
	"context"
	"math"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/kulinernusantara/backend/internal/domain/repositories"
)

// RatingSummary is the derived rating of one catalog entry.
type RatingSummary struct {
	// Average is the arithmetic mean of the review ratings, or the
	// baseline rating when no reviews exist.
	Average float64 `json:"average"`
	// Stars is Average rounded half-up for star display.
	Stars int `json:"stars"`
	// Count is the number of reviews contributing to Average; zero means
	// the baseline is in effect.
	Count int `json:"count"`
}

// RatingService computes derived rating values from the review collection.
// There is no caching: recomputation runs on every load and mutation and is
// O(review count), which stays cheap because review lists are small.
type RatingService struct {
	reviews repositories.ReviewRepository
}

// NewRatingService creates a new rating service
func NewRatingService(reviews repositories.ReviewRepository) *RatingService {
	return &RatingService{reviews: reviews}
}

// Summarize computes the rating summary for one entry. An entry without
// reviews keeps its authored baseline rating; it never shows up as unrated.
func (s *RatingService) Summarize(ctx context.Context, kulinerID string, baseline float64) (RatingSummary, error) {
	reviews, err := s.reviews.ListByKuliner(ctx, kulinerID)
	if err != nil {
		return RatingSummary{}, err
	}
	return Summarize(reviews, baseline), nil
}

// Summarize computes the summary for an already-loaded review list.
func Summarize(reviews []entities.Review, baseline float64) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{
			Average: baseline,
			Stars:   roundHalfUp(baseline),
			Count:   0,
		}
	}

	total := 0
	for i := range reviews {
		total += reviews[i].Rating
	}
	average := float64(total) / float64(len(reviews))
	return RatingSummary{
		Average: average,
		Stars:   roundHalfUp(average),
		Count:   len(reviews),
	}
}

// Snapshot precomputes the effective rating and review count for every entry
// that has reviews. The result satisfies the query pipeline's Aggregates
// interface and is meant to live for one request.
func (s *RatingService) Snapshot(ctx context.Context) (*AggregateSnapshot, error) {
	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	snap := &AggregateSnapshot{
		averages: make(map[string]float64, len(all)),
		counts:   make(map[string]int, len(all)),
	}
	for kulinerID, reviews := range all {
		if len(reviews) == 0 {
			continue
		}
		summary := Summarize(reviews, 0)
		snap.averages[kulinerID] = summary.Average
		snap.counts[kulinerID] = summary.Count
	}
	return snap, nil
}

// CatalogStats are the admin dashboard aggregates over the whole catalog.
type CatalogStats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
}

// Stats computes catalog-wide aggregates using each entry's effective rating.
func (s *RatingService) Stats(ctx context.Context, items []entities.Kuliner) (CatalogStats, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return CatalogStats{}, err
	}

	stats := CatalogStats{Total: len(items)}
	if len(items) == 0 {
		return stats, nil
	}

	sum := 0.0
	for i := range items {
		sum += snap.RatingFor(&items[i])
	}
	stats.AverageRating = sum / float64(len(items))
	return stats, nil
}

// AggregateSnapshot holds per-entry derived values for one request.
type AggregateSnapshot struct {
	averages map[string]float64
	counts   map[string]int
}

// RatingFor returns the computed average when reviews exist, the baseline
// otherwise.
func (a *AggregateSnapshot) RatingFor(k *entities.Kuliner) float64 {
	if avg, ok := a.averages[k.ID]; ok {
		return avg
	}
	return k.Rating
}

// ReviewCountFor returns the review count for an entry.
func (a *AggregateSnapshot) ReviewCountFor(kulinerID string) int {
	return a.counts[kulinerID]
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
