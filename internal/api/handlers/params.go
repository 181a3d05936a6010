package handlers

import (
	"net/http"
	"strconv"
	"strings"

	queryservices "github.com/kulinernusantara/backend/internal/query/services"
)

// intParam reads a positive integer query parameter, falling back on absence
// or garbage.
func intParam(r *http.Request, name string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// sortKeyParam reads the sort query parameter; unknown keys fall back to the
// given ordering.
func sortKeyParam(r *http.Request, fallback queryservices.SortKey) queryservices.SortKey {
	key := queryservices.SortKey(r.URL.Query().Get("sort"))
	if !key.IsValid() {
		return fallback
	}
	return key
}

// filterParams reads the pipeline filter parameters shared by the discovery
// search, the home grid, and the catalog list: provinsi, kota, free-text q,
// a comma-separated kategori list, and a maxPrice ceiling. Status is not
// read here; surfaces that filter by status set it themselves.
func filterParams(r *http.Request) queryservices.Filter {
	filter := queryservices.Filter{
		Provinsi: r.URL.Query().Get("provinsi"),
		Kota:     r.URL.Query().Get("kota"),
		Query:    r.URL.Query().Get("q"),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("kategori")); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				filter.Kategori = append(filter.Kategori, k)
			}
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("maxPrice")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			filter.MaxPrice = &v
		}
	}
	return filter
}
