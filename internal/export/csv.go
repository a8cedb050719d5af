// Package export renders transaction lists into downloadable formats.
// It is pure formatting over already-derived data; no aggregation logic
// lives here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// csvHeaders is the fixed column order of the transaction export.
var csvHeaders = []string{
	"Date", "Type", "Asset Name", "Asset Type",
	"Quantity", "Price", "Amount", "Platform", "Category", "Notes",
}

// WriteTransactionsCSV writes the transaction list as comma-separated
// values with a header row. Free-text fields containing commas or quotes
// are double-quote escaped by the csv writer.
func WriteTransactionsCSV(w io.Writer, transactions []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Type,
			t.AssetName,
			t.AssetType,
			formatNumber(t.Quantity),
			formatNumber(t.Price),
			formatNumber(t.Amount),
			t.Platform,
			t.Category,
			t.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatNumber renders a float without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
