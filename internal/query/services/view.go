package services

import (
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// View is a browsing session over the pipeline. It owns the current page
// number and enforces the reset rule: any change to the filter, the sort
// key, the page size, or the source collection snaps the page back to 1.
// Callers never hold a page number of their own, so a stale page referencing
// an out-of-range slice cannot occur. Safe for concurrent use.
type View struct {
	svc *KulinerQueryService

	mu       sync.Mutex
	pageSize int
	page     int
	lastKey  uint64
}

// NewView creates a view with the given default page size.
func NewView(svc *KulinerQueryService, pageSize int) *View {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View{
		svc:      svc,
		pageSize: pageSize,
		page:     1,
	}
}

// SetPage requests a page for the next recompute. Out-of-range values are
// clamped during recompute, not here.
func (v *View) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = page
}

// Next advances one page; Prev goes back one. Both saturate at the edges
// during recompute.
func (v *View) Next() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page++
}

// Prev moves back one page.
func (v *View) Prev() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page > 1 {
		v.page--
	}
}

// Recompute runs the pipeline over the given inputs. When the inputs differ
// from the previous call, the page resets to 1 first. The effective
// (clamped) page is retained for the next call.
func (v *View) Recompute(items []entities.Kuliner, filter Filter, sortKey SortKey) Page {
	return v.Serve(nil, items, filter, sortKey, 0, 0)
}

// Serve runs one request through the pipeline. A positive page or pageSize
// overrides the retained values; zero means "keep browsing where the view
// was". The reset rule still wins: when the filter, sort key, page size, or
// source collection changed since the previous call, the requested page is
// discarded and the view lands on page 1. The aggregates-bearing service is
// per request; nil falls back to the view's own.
func (v *View) Serve(svc *KulinerQueryService, items []entities.Kuliner, filter Filter, sortKey SortKey, page, pageSize int) Page {
	if svc == nil {
		svc = v.svc
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if pageSize >= 1 {
		v.pageSize = pageSize
	}
	if page >= 1 {
		v.page = page
	}

	key := v.inputKey(items, &filter, sortKey)
	if key != v.lastKey {
		v.page = 1
		v.lastKey = key
	}

	result := svc.Apply(items, Params{
		Filter:   filter,
		Sort:     sortKey,
		Page:     v.page,
		PageSize: v.pageSize,
	})
	v.page = result.Page
	return result
}

// inputKey fingerprints the filter, sort key, page size, and source
// collection. Item identity is id plus updatedAt, so an edited entry counts
// as a source change.
func (v *View) inputKey(items []entities.Kuliner, filter *Filter, sortKey SortKey) uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "f:%s|%s|%s|%s|%s|",
		strings.Join(filter.Kategori, ","),
		filter.Provinsi,
		filter.Kota,
		filter.Status,
		filter.Query,
	)
	if filter.MaxPrice != nil {
		fmt.Fprintf(h, "%d", *filter.MaxPrice)
	}
	fmt.Fprintf(h, "|s:%s|z:%d|n:%d|", sortKey, v.pageSize, len(items))
	for i := range items {
		fmt.Fprintf(h, "%s@%d;", items[i].ID, items[i].UpdatedAt.UnixNano())
	}
	return h.Sum64()
}
