package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() *KulinerSubmission {
	return &KulinerSubmission{
		Nama:      "Rendang Daging",
		Kategori:  "makanan-utama",
		Deskripsi: strings.Repeat("Rendang daging sapi khas Minangkabau dengan rempah pilihan. ", 4),
		Provinsi:  "sumatera-barat",
		Kota:      "Padang",
		Bahan:     []string{"Daging sapi", "Santan"},
		Langkah:   []string{"Masak hingga empuk"},
	}
}

func TestValidateKuliner_ValidSubmissionPasses(t *testing.T) {
	errs := ValidateKuliner(validSubmission())
	assert.Empty(t, errs)
}

func TestValidateKuliner_FieldRules(t *testing.T) {
	neg := -1
	low := 20000
	high := 10000

	tests := []struct {
		name    string
		mutate  func(*KulinerSubmission)
		field   string
		message string
	}{
		{
			name:    "nama too short",
			mutate:  func(s *KulinerSubmission) { s.Nama = "Ab" },
			field:   "nama",
			message: "Nama kuliner minimal 3 karakter",
		},
		{
			name:    "nama too long",
			mutate:  func(s *KulinerSubmission) { s.Nama = strings.Repeat("a", 61) },
			field:   "nama",
			message: "Nama kuliner maksimal 60 karakter",
		},
		{
			name:    "kategori missing",
			mutate:  func(s *KulinerSubmission) { s.Kategori = "" },
			field:   "kategori",
			message: "Kategori wajib dipilih",
		},
		{
			name:    "deskripsi too short",
			mutate:  func(s *KulinerSubmission) { s.Deskripsi = "Terlalu singkat" },
			field:   "deskripsi",
			message: "Deskripsi minimal 160 karakter",
		},
		{
			name:    "deskripsi too long",
			mutate:  func(s *KulinerSubmission) { s.Deskripsi = strings.Repeat("a", 601) },
			field:   "deskripsi",
			message: "Deskripsi maksimal 600 karakter",
		},
		{
			name:    "provinsi missing",
			mutate:  func(s *KulinerSubmission) { s.Provinsi = "" },
			field:   "provinsi",
			message: "Provinsi wajib dipilih",
		},
		{
			name:    "kota missing",
			mutate:  func(s *KulinerSubmission) { s.Kota = "" },
			field:   "kota",
			message: "Kota wajib dipilih",
		},
		{
			name:    "negative hargaMin",
			mutate:  func(s *KulinerSubmission) { s.HargaMin = &neg },
			field:   "hargaMin",
			message: "Harga minimal harus angka >= 0",
		},
		{
			name:    "hargaMax below hargaMin",
			mutate:  func(s *KulinerSubmission) { s.HargaMin = &low; s.HargaMax = &high },
			field:   "hargaMax",
			message: "Harga maksimal tidak boleh kurang dari minimal",
		},
		{
			name:    "bahan all blank",
			mutate:  func(s *KulinerSubmission) { s.Bahan = []string{"", "  "} },
			field:   "bahan",
			message: "Minimal 1 bahan diperlukan",
		},
		{
			name:    "langkah empty",
			mutate:  func(s *KulinerSubmission) { s.Langkah = nil },
			field:   "langkah",
			message: "Minimal 1 langkah diperlukan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)

			errs := ValidateKuliner(sub)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidateKuliner_CollectsAllFailures(t *testing.T) {
	errs := ValidateKuliner(&KulinerSubmission{})
	for _, field := range []string{"nama", "kategori", "deskripsi", "provinsi", "kota", "bahan", "langkah"} {
		assert.Contains(t, errs, field)
	}
}
