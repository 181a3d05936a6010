// Package validation checks user-submitted catalog entries before anything is
// persisted. Failures come back as a field-keyed message map; an entity with
// any failing field is never partially saved.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// KulinerSubmission is the parsed, trimmed form input under validation.
type KulinerSubmission struct {
	Nama      string `validate:"required,min=3,max=60"`
	Kategori  string `validate:"required"`
	Deskripsi string `validate:"required,min=160,max=600"`
	Provinsi  string `validate:"required"`
	Kota      string `validate:"required"`
	HargaMin  *int   `validate:"omitempty,min=0"`
	HargaMax  *int   `validate:"omitempty,min=0"`
	Bahan     []string
	Langkah   []string
}

// field-keyed messages, matching the form field names
var messages = map[string]string{
	"Nama.required":      "Nama kuliner minimal 3 karakter",
	"Nama.min":           "Nama kuliner minimal 3 karakter",
	"Nama.max":           "Nama kuliner maksimal 60 karakter",
	"Kategori.required":  "Kategori wajib dipilih",
	"Deskripsi.required": "Deskripsi minimal 160 karakter",
	"Deskripsi.min":      "Deskripsi minimal 160 karakter",
	"Deskripsi.max":      "Deskripsi maksimal 600 karakter",
	"Provinsi.required":  "Provinsi wajib dipilih",
	"Kota.required":      "Kota wajib dipilih",
	"HargaMin.min":       "Harga minimal harus angka >= 0",
	"HargaMax.min":       "Harga maksimal harus angka >= 0",
}

var fieldKeys = map[string]string{
	"Nama":      "nama",
	"Kategori":  "kategori",
	"Deskripsi": "deskripsi",
	"Provinsi":  "provinsi",
	"Kota":      "kota",
	"HargaMin":  "hargaMin",
	"HargaMax":  "hargaMax",
}

// ValidateKuliner checks every constraint and returns a field-keyed error
// map. An empty map means the submission may be saved.
func ValidateKuliner(sub *KulinerSubmission) map[string]string {
	errs := map[string]string{}

	if err := validate.Struct(sub); err != nil {
		if invalid, ok := err.(*validator.InvalidValidationError); ok {
			errs["_"] = invalid.Error()
			return errs
		}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			key, okKey := fieldKeys[fieldErr.StructField()]
			if !okKey {
				key = strings.ToLower(fieldErr.StructField())
			}
			if msg, okMsg := messages[fieldErr.StructField()+"."+fieldErr.Tag()]; okMsg {
				errs[key] = msg
			} else {
				errs[key] = "Nilai tidak valid"
			}
		}
	}

	if !hasNonBlank(sub.Bahan) {
		errs["bahan"] = "Minimal 1 bahan diperlukan"
	}
	if !hasNonBlank(sub.Langkah) {
		errs["langkah"] = "Minimal 1 langkah diperlukan"
	}

	// Cross-field rule the struct tags cannot express.
	if sub.HargaMin != nil && sub.HargaMax != nil && *sub.HargaMax < *sub.HargaMin {
		errs["hargaMax"] = "Harga maksimal tidak boleh kurang dari minimal"
	}

	return errs
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
