package dataprocessing

import "strings"

// headerScanRows is the size of the window inspected for the header row.
const headerScanRows = 5

// DetectHeaderRow scans up to the first five raw rows and returns the index
// of the row most likely to be the real column header: the one whose trimmed
// cell values match the most synonym-table keys. Ties resolve to the earliest
// row, and a window with no matches at all falls back to row 0.
func DetectHeaderRow(window [][]string) int {
	limit := len(window)
	if limit > headerScanRows {
		limit = headerScanRows
	}

	headerRow := 0
	maxMatches := 0
	for i := 0; i < limit; i++ {
		matches := 0
		for _, cell := range window[i] {
			if _, ok := columnSynonyms[strings.TrimSpace(cell)]; ok {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			headerRow = i
		}
	}
	return headerRow
}
