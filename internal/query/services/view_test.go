package services

import (
	"testing"
	"time"

	"github.com/kulinernusantara/backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestView_FilterChangeResetsPage(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	// Four of five entries are published; page size 1 gives four pages.
	filter := Filter{Status: entities.StatusPublished}

	for _, priorPage := range []int{2, 3, 4, 99} {
		view := NewView(svc, 1)
		view.Recompute(items, filter, SortName)
		view.SetPage(priorPage)
		page := view.Recompute(items, filter, SortName)
		assert.LessOrEqual(t, page.Page, page.TotalPages)

		// Tightening the filter must land on page 1 regardless of where
		// the view was.
		page = view.Recompute(items, Filter{Status: entities.StatusPublished, Kota: "Bandung"}, SortName)
		assert.Equal(t, 1, page.Page, "prior page %d", priorPage)
	}
}

func TestView_SortChangeResetsPage(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	view := NewView(svc, 2)
	view.Recompute(items, Filter{}, SortName)
	view.Next()
	page := view.Recompute(items, Filter{}, SortName)
	assert.Equal(t, 2, page.Page)

	page = view.Recompute(items, Filter{}, SortNewest)
	assert.Equal(t, 1, page.Page)
}

func TestView_SourceChangeResetsPage(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	view := NewView(svc, 2)
	view.Recompute(items, Filter{}, SortName)
	view.Next()
	page := view.Recompute(items, Filter{}, SortName)
	assert.Equal(t, 2, page.Page)

	// Editing an entry changes its updatedAt, which counts as a new source.
	edited := make([]entities.Kuliner, len(items))
	copy(edited, items)
	edited[0].UpdatedAt = edited[0].UpdatedAt.Add(time.Minute)

	page = view.Recompute(edited, Filter{}, SortName)
	assert.Equal(t, 1, page.Page)
}

func TestView_UnchangedInputsKeepPage(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	view := NewView(svc, 2)
	view.Recompute(items, Filter{}, SortName)
	view.Next()

	page := view.Recompute(items, Filter{}, SortName)
	assert.Equal(t, 2, page.Page)

	page = view.Recompute(items, Filter{}, SortName)
	assert.Equal(t, 2, page.Page, "recomputing with identical inputs must not reset")
}

func TestView_NextSaturatesAtLastPage(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog() // 5 items, page size 2 -> 3 pages

	view := NewView(svc, 2)
	view.Recompute(items, Filter{}, SortName)
	for i := 0; i < 10; i++ {
		view.Next()
	}
	page := view.Recompute(items, Filter{}, SortName)
	assert.Equal(t, 3, page.Page)

	for i := 0; i < 10; i++ {
		view.Prev()
	}
	page = view.Recompute(items, Filter{}, SortName)
	assert.Equal(t, 1, page.Page)
}

func TestView_ServeDiscardsRequestedPageOnFilterChange(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	view := NewView(svc, 2)
	view.Serve(nil, items, Filter{}, SortName, 0, 0)

	page := view.Serve(nil, items, Filter{}, SortName, 3, 0)
	assert.Equal(t, 3, page.Page, "unchanged inputs honor the requested page")

	page = view.Serve(nil, items, Filter{Status: entities.StatusPublished}, SortName, 3, 0)
	assert.Equal(t, 1, page.Page, "the requested page loses to the reset rule")
}

func TestView_ServePageSizeChangeResets(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	view := NewView(svc, 2)
	view.Serve(nil, items, Filter{}, SortName, 0, 0)
	page := view.Serve(nil, items, Filter{}, SortName, 2, 0)
	assert.Equal(t, 2, page.Page)

	page = view.Serve(nil, items, Filter{}, SortName, 0, 1)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.PageSize)
}

func TestView_ServeZeroKeepsBrowsingPosition(t *testing.T) {
	svc := NewKulinerQueryService(nil)
	items := testCatalog()

	view := NewView(svc, 2)
	view.Serve(nil, items, Filter{}, SortName, 0, 0)
	view.Serve(nil, items, Filter{}, SortName, 2, 0)

	page := view.Serve(nil, items, Filter{}, SortName, 0, 0)
	assert.Equal(t, 2, page.Page)
}

func TestView_EmptyResultIsPageOneOfZero(t *testing.T) {
	svc := NewKulinerQueryService(nil)

	view := NewView(svc, 8)
	page := view.Recompute(testCatalog(), Filter{Kota: "Medan"}, SortName)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Empty(t, page.Items)
}
