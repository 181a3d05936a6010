package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kulinernusantara/backend/internal/domain/entities"
)

// ExportCSV writes the filtered set as CSV, one row per entry. The column
// set matches the admin list table.
func ExportCSV(w io.Writer, items []entities.Kuliner) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Title", "Kategori", "Provinsi", "Kota", "Status"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range items {
		record := []string{
			items[i].Nama,
			items[i].Kategori,
			items[i].Provinsi,
			items[i].Kota,
			string(items[i].Status),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
