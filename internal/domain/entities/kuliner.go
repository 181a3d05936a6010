package entities

import "time"

// Status is the lifecycle state of a catalog entry.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusDraft, StatusPublished}
}

// IsValid checks if the status value is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	}
	return false
}

// Kuliner represents one culinary catalog entry.
//
// JSON field names match the fixture files and the stored collection, so a
// round trip through the store or the fixture endpoints is lossless.
type Kuliner struct {
	ID        string    `json:"id"`
	Nama      string    `json:"nama"`
	Kategori  string    `json:"kategori"`
	Deskripsi string    `json:"deskripsi"`
	Provinsi  string    `json:"provinsi"`
	Kota      string    `json:"kota"`
	HargaMin  *int      `json:"hargaMin,omitempty"`
	HargaMax  *int      `json:"hargaMax,omitempty"`
	Bahan     []string  `json:"bahan"`
	Langkah   []string  `json:"langkah"`
	Foto      []string  `json:"foto"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	Rating    float64   `json:"rating"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SearchText returns the fields a free-text query is matched against.
func (k *Kuliner) SearchText() []string {
	return []string{k.Nama, k.Kategori, k.Kota, k.Provinsi}
}
