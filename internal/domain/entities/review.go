package entities

import "time"

// Review is a user rating plus comment for exactly one kuliner entry.
// Reviews become visible as soon as they are submitted; there is no
// moderation state.
type Review struct {
	ID        string    `json:"id"`
	KulinerID string    `json:"kulinerId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Time      time.Time `json:"time"`
}

// ReviewsByKuliner maps a kuliner id to its reviews, newest first.
// Orphaned entries (ids no longer in the catalog) are tolerated.
type ReviewsByKuliner map[string][]Review

// ReviewDetail is the admin view of a review, joined with the kuliner name.
type ReviewDetail struct {
	Review
	KulinerNama string `json:"kulinerNama"`
}
