package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"smmerge/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Write BOM if requested (helps Excel recognize UTF-8)
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteTable writes a canonical table as a BOM-prefixed CSV file in the
// master column order.
func (w *CSVWriter) WriteTable(filePath string, table *domain.PostTable) error {
	records := make([][]string, 0, table.Len())
	for i := range table.Records {
		records = append(records, recordStrings(&table.Records[i]))
	}
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   domain.MasterColumns,
		Records:   records,
		BOMPrefix: true,
	})
}

// recordStrings renders one record's cells in master column order.
func recordStrings(rec *domain.PostRecord) []string {
	out := make([]string, 0, len(domain.MasterColumns))
	for _, v := range rec.Values() {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case int64:
			out = append(out, formatInt(t))
		case float64:
			out = append(out, formatFloat(t))
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}
