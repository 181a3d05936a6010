// Package storage implements the domain repositories on top of a
// StoreProvider. Every collection lives under one fixed logical key and is
// replaced wholesale on write. Reads tolerate absence and parse failures by
// returning a defined default; writes are best effort: a store failure is
// logged, never propagated to break the calling flow.
package storage

// Logical store keys. These names are part of the stored-data contract and
// must not change between releases.
const (
	keyItems    = "umkmItems"
	keyReviews  = "kulinerReviews"
	keyDraft    = "umkmDraft"
	keySettings = "admin-settings"
	keyArea     = "userArea"
	keyFilters  = "discoveryFilters"
	keyFavs     = "kulinerFavorites"
	keyTheme    = "theme"
	keyRole     = "authRole"
)
