package storage

import (
	"time"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// SeedCatalog returns the demo entries shown before an UMKM account has
// stored anything of its own.
func SeedCatalog() []entities.Kuliner {
	created := time.Date(2024, time.March, 12, 8, 0, 0, 0, time.UTC)

	return []entities.Kuliner{
		{
			ID:        "seed-rendang",
			Nama:      "Rendang Daging Sapi",
			Kategori:  "makanan-utama",
			Deskripsi: "Rendang daging sapi khas Minangkabau yang dimasak perlahan dengan santan dan campuran rempah hingga bumbu meresap sempurna. Tekstur daging empuk dengan cita rasa gurih pedas yang kaya, cocok disantap bersama nasi hangat.",
			Provinsi:  "sumatera-barat",
			Kota:      "Padang",
			HargaMin:  intPtr(25000),
			HargaMax:  intPtr(45000),
			Bahan:     []string{"Daging sapi", "Santan kelapa", "Cabai merah", "Serai", "Daun jeruk"},
			Langkah:   []string{"Haluskan bumbu", "Masak santan hingga berminyak", "Masukkan daging dan masak hingga empuk"},
			Foto:      []string{"/images/rendang.jpg"},
			Rating:    4.8,
			Status:    entities.StatusPublished,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:        "seed-pempek",
			Nama:      "Pempek Kapal Selam",
			Kategori:  "makanan-ringan",
			Deskripsi: "Pempek kapal selam berisi telur utuh dengan adonan ikan tenggiri pilihan, disajikan bersama kuah cuko yang asam manis pedas. Resep turun-temurun keluarga Palembang dengan perbandingan ikan dan sagu yang menjaga tekstur kenyal namun lembut.",
			Provinsi:  "sumatera-selatan",
			Kota:      "Palembang",
			HargaMin:  intPtr(15000),
			HargaMax:  intPtr(30000),
			Bahan:     []string{"Ikan tenggiri", "Sagu", "Telur", "Gula merah", "Asam jawa"},
			Langkah:   []string{"Campur adonan ikan dan sagu", "Bungkus telur dengan adonan", "Rebus lalu goreng"},
			Foto:      []string{"/images/pempek.jpg"},
			Rating:    4.6,
			Status:    entities.StatusPublished,
			CreatedAt: created.Add(24 * time.Hour),
			UpdatedAt: created.Add(24 * time.Hour),
		},
		{
			ID:        "seed-es-cendol",
			Nama:      "Es Cendol Gula Aren",
			Kategori:  "minuman",
			Deskripsi: "Minuman segar berbahan cendol tepung beras dengan kuah santan dan gula aren asli yang dimasak hingga kental beraroma karamel. Disajikan dingin dengan es serut, pas dinikmati siang hari atau sebagai penutup setelah hidangan utama keluarga.",
			Provinsi:  "jawa-barat",
			Kota:      "Bandung",
			HargaMin:  intPtr(8000),
			HargaMax:  intPtr(15000),
			Bahan:     []string{"Tepung beras", "Daun pandan", "Santan", "Gula aren", "Es serut"},
			Langkah:   []string{"Buat adonan cendol", "Cetak dan rebus", "Sajikan dengan santan dan gula aren"},
			Foto:      []string{"/images/es-cendol.jpg"},
			Rating:    4.4,
			Status:    entities.StatusDraft,
			CreatedAt: created.Add(48 * time.Hour),
			UpdatedAt: created.Add(72 * time.Hour),
		},
	}
}

func intPtr(v int) *int {
	return &v
}
