// Package exporter persists normalized tables and comparison results.
//
// This package contains two main components:
//
// ExcelWriter: writes a merged canonical table as a single-sheet workbook
// and a snapshot comparison as a two-sheet workbook (row-level Data plus
// the Calculation summary).
//
// CSVWriter: core CSV writing with UTF-8 BOM for Excel compatibility, plus
// a canonical-table convenience wrapper.
//
// Example usage:
//
//	xw := exporter.NewExcelWriter(logger)
//	err := xw.WriteTable("merged_data_20250101_120000.xlsx", table)
//
//	cw := exporter.NewCSVWriter(logger)
//	err = cw.WriteTable("merged_data_20250101_120000.csv", table)
package exporter
