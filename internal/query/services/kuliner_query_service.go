// Package services implements the read-side query pipeline shared by the
// discovery grid, the UMKM dashboard, and the admin list pages: a chain of
// composable filter predicates, a stable sort, and pagination with defined
// clamping behaviour.
package services

import (
	"sort"
	"strings"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// SortKey selects the comparator used to order a filtered set.
type SortKey string

const (
	// SortName orders alphabetically by name.
	SortName SortKey = "name"
	// SortRating orders by rating, highest first.
	SortRating SortKey = "rating"
	// SortReviews orders by review count, highest first.
	SortReviews SortKey = "reviews"
	// SortNewest orders by last update, newest first.
	SortNewest SortKey = "newest"
	// SortPopular is the discovery grid's "populer" order: rating, highest
	// first, using the computed average when reviews exist.
	SortPopular SortKey = "popular"
)

// IsValid checks if the sort key is one of the defined constants.
func (s SortKey) IsValid() bool {
	switch s {
	case SortName, SortRating, SortReviews, SortNewest, SortPopular:
		return true
	}
	return false
}

// Filter holds the predicates applied to a collection. Every predicate is
// independent; the zero value passes everything. Predicates combine as a
// logical AND, so application order never changes the result.
type Filter struct {
	Kategori []string
	Provinsi string
	Kota     string
	Status   entities.Status
	MaxPrice *int
	Query    string
}

// Matches reports whether one entry satisfies every active predicate.
func (f *Filter) Matches(k *entities.Kuliner) bool {
	return f.matchesKategori(k) &&
		f.matchesArea(k) &&
		f.matchesStatus(k) &&
		f.matchesPrice(k) &&
		f.matchesQuery(k)
}

func (f *Filter) matchesKategori(k *entities.Kuliner) bool {
	if len(f.Kategori) == 0 {
		return true
	}
	for _, kategori := range f.Kategori {
		if k.Kategori == kategori {
			return true
		}
	}
	return false
}

func (f *Filter) matchesArea(k *entities.Kuliner) bool {
	if f.Provinsi != "" && k.Provinsi != f.Provinsi {
		return false
	}
	if f.Kota != "" && k.Kota != f.Kota {
		return false
	}
	return true
}

func (f *Filter) matchesStatus(k *entities.Kuliner) bool {
	return f.Status == "" || k.Status == f.Status
}

// matchesPrice applies the price ceiling. Entries without a minimum price
// pass: an unknown price is never grounds for hiding an entry.
func (f *Filter) matchesPrice(k *entities.Kuliner) bool {
	if f.MaxPrice == nil || k.HargaMin == nil {
		return true
	}
	return *k.HargaMin <= *f.MaxPrice
}

func (f *Filter) matchesQuery(k *entities.Kuliner) bool {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}
	for _, field := range k.SearchText() {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Aggregates supplies derived per-entry values to the sort comparators.
type Aggregates interface {
	// RatingFor returns the effective rating for an entry: the computed
	// review average when reviews exist, the baseline otherwise.
	RatingFor(k *entities.Kuliner) float64

	// ReviewCountFor returns the number of reviews for an entry.
	ReviewCountFor(kulinerID string) int
}

// Params describes one query over a collection.
type Params struct {
	Filter   Filter
	Sort     SortKey
	Page     int
	PageSize int
}

// Page is the paginated view of a filtered, sorted collection.
type Page struct {
	Items      []entities.Kuliner `json:"items"`
	TotalCount int                `json:"totalCount"`
	TotalPages int                `json:"totalPages"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

// HasNext reports whether a later page exists.
func (p *Page) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p *Page) HasPrev() bool {
	return p.Page > 1
}

// KulinerQueryService runs the filter, sort, paginate pipeline.
type KulinerQueryService struct {
	agg Aggregates
}

// NewKulinerQueryService creates a new query service. The aggregates source
// may be nil, in which case rating sorts use the baseline rating and review
// counts are zero.
func NewKulinerQueryService(agg Aggregates) *KulinerQueryService {
	return &KulinerQueryService{agg: agg}
}

// FilterItems returns the entries satisfying every active predicate, in
// source order.
func (s *KulinerQueryService) FilterItems(items []entities.Kuliner, filter Filter) []entities.Kuliner {
	result := make([]entities.Kuliner, 0, len(items))
	for i := range items {
		if filter.Matches(&items[i]) {
			result = append(result, items[i])
		}
	}
	return result
}

// SortItems returns a sorted copy of items. The sort is stable: entries with
// equal keys keep their relative source order under every key.
func (s *KulinerQueryService) SortItems(items []entities.Kuliner, key SortKey) []entities.Kuliner {
	sorted := make([]entities.Kuliner, len(items))
	copy(sorted, items)

	switch key {
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Nama) < strings.ToLower(sorted[j].Nama)
		})
	case SortRating, SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return s.ratingFor(&sorted[i]) > s.ratingFor(&sorted[j])
		})
	case SortReviews:
		sort.SliceStable(sorted, func(i, j int) bool {
			return s.reviewCountFor(sorted[i].ID) > s.reviewCountFor(sorted[j].ID)
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})
	}
	return sorted
}

// Paginate slices items into the requested page. An empty set yields zero
// pages and effective page 1; an out-of-range request clamps rather than
// failing.
func (s *KulinerQueryService) Paginate(items []entities.Kuliner, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if total == 0 {
		return Page{
			Items:      []entities.Kuliner{},
			TotalCount: 0,
			TotalPages: 0,
			Page:       1,
			PageSize:   pageSize,
		}
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

// Apply runs the full pipeline: filter, stable sort, paginate.
func (s *KulinerQueryService) Apply(items []entities.Kuliner, params Params) Page {
	filtered := s.FilterItems(items, params.Filter)
	sorted := s.SortItems(filtered, params.Sort)
	return s.Paginate(sorted, params.Page, params.PageSize)
}

// ScopeDiscovery narrows the public catalog before filtering. With an area
// selected, the grid shows that city only; without one it shows the curated
// popular list (in curated order, capped at limit), falling back to the
// top-rated entries when the popular list matches nothing.
func (s *KulinerQueryService) ScopeDiscovery(items []entities.Kuliner, area *entities.Area, popular []string, limit int) []entities.Kuliner {
	if limit < 1 {
		limit = 16
	}

	if area != nil {
		return s.FilterItems(items, Filter{Kota: area.Kota})
	}

	byID := make(map[string]int, len(items))
	for i := range items {
		byID[items[i].ID] = i
	}

	// The curated list dictates the order; ids missing from the catalog are
	// skipped.
	result := make([]entities.Kuliner, 0, limit)
	for _, id := range popular {
		if i, ok := byID[id]; ok {
			result = append(result, items[i])
			if len(result) == limit {
				break
			}
		}
	}
	if len(result) > 0 {
		return result
	}

	top := s.SortItems(items, SortRating)
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

func (s *KulinerQueryService) ratingFor(k *entities.Kuliner) float64 {
	if s.agg == nil {
		return k.Rating
	}
	return s.agg.RatingFor(k)
}

func (s *KulinerQueryService) reviewCountFor(id string) int {
	if s.agg == nil {
		return 0
	}
	return s.agg.ReviewCountFor(id)
}
