package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"smmerge/internal/dataprocessing"
	"smmerge/pkg/contracts/domain"
)

// Sheet names of a comparison workbook: row-level joined data plus the
// summary metrics.
const (
	dataSheetName        = "Data"
	calculationSheetName = "Calculation"
)

// ExcelWriter writes canonical tables and comparison results as .xlsx
// workbooks ready to hand back to the user.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteTable writes a canonical table to a single-sheet workbook with the
// master column order.
func (w *ExcelWriter) WriteTable(path string, table *domain.PostTable) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := writeHeaderRow(f, sheet, domain.MasterColumns); err != nil {
		return err
	}
	for i := range table.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		values := table.Records[i].Values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	w.logger.Info("writing merged workbook",
		slog.String("path", path),
		slog.Int("record_count", table.Len()))
	return saveWorkbook(f, path)
}

// WriteComparison writes a comparison result as a two-sheet workbook: the
// joined row-level data plus the summary metrics.
func (w *ExcelWriter) WriteComparison(path string, result *dataprocessing.ComparisonResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), dataSheetName); err != nil {
		return fmt.Errorf("failed to rename data sheet: %w", err)
	}

	headers := make([]string, 0, len(domain.MasterColumns)+2*len(dataprocessing.CompareMetrics))
	headers = append(headers, domain.MasterColumns...)
	for _, m := range dataprocessing.CompareMetrics {
		headers = append(headers, m+"_old", m+"_difference")
	}
	if err := writeHeaderRow(f, dataSheetName, headers); err != nil {
		return err
	}

	for i, row := range result.Rows {
		values := row.Record.Values()
		for _, m := range dataprocessing.CompareMetrics {
			if row.Matched {
				values = append(values, row.OldMetrics[m])
			} else {
				values = append(values, "")
			}
			values = append(values, row.Differences[m])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(dataSheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(calculationSheetName); err != nil {
		return fmt.Errorf("failed to create calculation sheet: %w", err)
	}
	if err := writeHeaderRow(f, calculationSheetName, []string{"Metrics", "Values"}); err != nil {
		return err
	}
	for i, entry := range result.Summary {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address summary row %d: %w", i+2, err)
		}
		values := []interface{}{entry.Metric, entry.Value}
		if err := f.SetSheetRow(calculationSheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+2, err)
		}
	}

	w.logger.Info("writing comparison workbook",
		slog.String("path", path),
		slog.Int("row_count", len(result.Rows)),
		slog.Int("matched", result.Matched),
		slog.Int("unmatched", result.Unmatched))
	return saveWorkbook(f, path)
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

func saveWorkbook(f *excelize.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
