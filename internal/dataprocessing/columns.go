package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonWordRun    = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// NormalizeLabel cleans a raw column label: trim, lowercase, replace every
// run of non-word characters with a single underscore and collapse repeated
// underscores. The result is stable, normalizing twice returns the same
// label.
func NormalizeLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = nonWordRun.ReplaceAllString(s, "_")
	return underscoreRun.ReplaceAllString(s, "_")
}

// MapColumn normalizes a raw label and rewrites it to its canonical field
// name. Labels without a synonym entry pass through normalized but otherwise
// unchanged.
func MapColumn(label string) string {
	normalized := NormalizeLabel(label)
	if canonical, ok := columnSynonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// MapColumns applies MapColumn to every header.
func MapColumns(headers []string) []string {
	mapped := make([]string, len(headers))
	for i, h := range headers {
		mapped[i] = MapColumn(h)
	}
	return mapped
}

// cellAt returns the cell at idx, tolerating ragged rows.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnIsNumeric reports whether every non-empty cell of a column parses as
// a number. A column with no values counts as numeric.
func columnIsNumeric(rows [][]string, idx int) bool {
	for _, row := range rows {
		v := strings.TrimSpace(cellAt(row, idx))
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err != nil {
			return false
		}
	}
	return true
}

// mergeDuplicateColumns collapses columns that mapped to the same canonical
// name into the first-seen occurrence. Numeric columns accumulate the later
// duplicates' coerced values; non-numeric columns keep the first non-empty
// value. All later duplicate columns are dropped.
func mergeDuplicateColumns(headers []string, rows [][]string) ([]string, [][]string) {
	seen := make(map[string]int, len(headers))
	duplicates := make(map[int]bool)

	for i, name := range headers {
		first, dup := seen[name]
		if !dup {
			seen[name] = i
			continue
		}
		duplicates[i] = true

		if columnIsNumeric(rows, first) {
			for _, row := range rows {
				base, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cellAt(row, first)), ",", ""), 64)
				extra, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cellAt(row, i)), ",", ""), 64)
				if first < len(row) {
					row[first] = strconv.FormatFloat(base+extra, 'f', -1, 64)
				}
			}
		} else {
			for _, row := range rows {
				if strings.TrimSpace(cellAt(row, first)) == "" && first < len(row) {
					row[first] = cellAt(row, i)
				}
			}
		}
	}

	if len(duplicates) == 0 {
		return headers, rows
	}

	keptHeaders := make([]string, 0, len(headers)-len(duplicates))
	for i, name := range headers {
		if !duplicates[i] {
			keptHeaders = append(keptHeaders, name)
		}
	}
	keptRows := make([][]string, len(rows))
	for ri, row := range rows {
		kept := make([]string, 0, len(keptHeaders))
		for i := range headers {
			if !duplicates[i] {
				kept = append(kept, cellAt(row, i))
			}
		}
		keptRows[ri] = kept
	}
	return keptHeaders, keptRows
}
