package entities

import "time"

// KulinerForm is the raw form snapshot for a catalog entry. Numeric fields
// stay strings because the snapshot captures the input exactly as typed;
// conversion happens at submit time.
type KulinerForm struct {
	Nama      string   `json:"nama"`
	Kategori  string   `json:"kategori"`
	Deskripsi string   `json:"deskripsi"`
	Provinsi  string   `json:"provinsi"`
	Kota      string   `json:"kota"`
	HargaMin  string   `json:"hargaMin"`
	HargaMax  string   `json:"hargaMax"`
	Bahan     []string `json:"bahan"`
	Langkah   []string `json:"langkah"`
	Foto      []string `json:"foto"`
	Lat       string   `json:"lat"`
	Lng       string   `json:"lng"`
	Status    Status   `json:"status"`
}

// EmptyKulinerForm returns the initial state of a new-entry form.
func EmptyKulinerForm() KulinerForm {
	return KulinerForm{
		Bahan:   []string{""},
		Langkah: []string{""},
		Foto:    []string{},
		Status:  StatusDraft,
	}
}

// Draft is an unsaved, autosaved form snapshot. At most one draft exists at a
// time; a new save replaces the previous one.
type Draft struct {
	Data      KulinerForm `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
