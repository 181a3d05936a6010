package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

type stubReviewRepo struct {
	data entities.ReviewsByKuliner
}

func (s *stubReviewRepo) GetAll(_ context.Context) (entities.ReviewsByKuliner, error) {
	return s.data, nil
}

func (s *stubReviewRepo) ListByKuliner(_ context.Context, kulinerID string) ([]entities.Review, error) {
	return s.data[kulinerID], nil
}

func (s *stubReviewRepo) Replace(_ context.Context, all entities.ReviewsByKuliner) error {
	s.data = all
	return nil
}

func reviewsWithRatings(kulinerID string, ratings ...int) []entities.Review {
	out := make([]entities.Review, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, entities.Review{
			ID:        kulinerID + "-r" + string(rune('a'+i)),
			KulinerID: kulinerID,
			Rating:    r,
			Text:      "enak sekali",
		})
	}
	return out
}

func TestSummarize_NoReviewsKeepsBaseline(t *testing.T) {
	got := Summarize(nil, 4.0)

	assert.Equal(t, 4.0, got.Average)
	assert.Equal(t, 4, got.Stars)
	assert.Equal(t, 0, got.Count)
}

func TestSummarize_MeanReplacesBaseline(t *testing.T) {
	// Baseline 4.0 with reviews 5, 5, 4, 2 averages to exactly 4.0.
	got := Summarize(reviewsWithRatings("k-1", 5, 5, 4, 2), 4.0)

	assert.Equal(t, 4.0, got.Average)
	assert.Equal(t, 4, got.Stars)
	assert.Equal(t, 4, got.Count)
}

func TestSummarize_StarsRoundHalfUp(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		stars   int
	}{
		{"exact half rounds up", []int{4, 5}, 5},      // 4.5
		{"below half rounds down", []int{4, 4, 5}, 4}, // 4.33
		{"above half rounds up", []int{5, 5, 4}, 5},   // 4.67
		{"single review", []int{3}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(reviewsWithRatings("k-1", tt.ratings...), 0)
			assert.Equal(t, tt.stars, got.Stars)
		})
	}
}

func TestRatingService_DeletingOnlyReviewRevertsToBaseline(t *testing.T) {
	repo := &stubReviewRepo{data: entities.ReviewsByKuliner{
		"k-1": reviewsWithRatings("k-1", 2),
	}}
	svc := NewRatingService(repo)
	ctx := context.Background()

	before, err := svc.Summarize(ctx, "k-1", 4.8)
	require.NoError(t, err)
	assert.Equal(t, 2.0, before.Average)

	repo.data = entities.ReviewsByKuliner{}

	after, err := svc.Summarize(ctx, "k-1", 4.8)
	require.NoError(t, err)
	assert.Equal(t, 4.8, after.Average)
	assert.Equal(t, 5, after.Stars)
	assert.Equal(t, 0, after.Count)
}

func TestSnapshot_ServesQueryAggregates(t *testing.T) {
	repo := &stubReviewRepo{data: entities.ReviewsByKuliner{
		"k-1": reviewsWithRatings("k-1", 5, 4),
		"k-2": {},
	}}
	svc := NewRatingService(repo)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	rated := &entities.Kuliner{ID: "k-1", Rating: 3.0}
	unrated := &entities.Kuliner{ID: "k-3", Rating: 4.2}

	assert.Equal(t, 4.5, snap.RatingFor(rated))
	assert.Equal(t, 2, snap.ReviewCountFor("k-1"))
	assert.Equal(t, 4.2, snap.RatingFor(unrated), "baseline applies without reviews")
	assert.Equal(t, 0, snap.ReviewCountFor("k-3"))
	assert.Equal(t, 0, snap.ReviewCountFor("k-2"), "empty review list counts as unrated")
}

func TestStats_AveragesEffectiveRatings(t *testing.T) {
	repo := &stubReviewRepo{data: entities.ReviewsByKuliner{
		"k-1": reviewsWithRatings("k-1", 5, 5),
	}}
	svc := NewRatingService(repo)

	items := []entities.Kuliner{
		{ID: "k-1", Rating: 3.0}, // effective 5.0 from reviews
		{ID: "k-2", Rating: 4.0}, // baseline
	}

	stats, err := svc.Stats(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 4.5, stats.AverageRating)
}

func TestStats_EmptyCatalog(t *testing.T) {
	svc := NewRatingService(&stubReviewRepo{data: entities.ReviewsByKuliner{}})

	stats, err := svc.Stats(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AverageRating)
}
