package dataprocessing

import (
	"errors"
	"fmt"

	"smmerge/pkg/contracts/domain"
)

// ErrNilSnapshot indicates a comparison call without both snapshots.
var ErrNilSnapshot = errors.New("both snapshots are required")

// ComparisonRow is one joined row of a snapshot comparison. The new table is
// the base side: Record is always a new-table record, OldMetrics is nil when
// the post id has no old-side match.
type ComparisonRow struct {
	Record      domain.PostRecord `json:"record"`
	Matched     bool              `json:"matched"`
	OldMetrics  map[string]int64  `json:"old_metrics,omitempty"`
	Differences map[string]int64  `json:"differences"`
}

// SummaryEntry is one metric line of the comparison summary sheet.
type SummaryEntry struct {
	Metric string `json:"metric"`
	Value  int64  `json:"value"`
}

// ComparisonResult bundles the row-level join and the summary statistics of
// one old/new snapshot comparison.
type ComparisonResult struct {
	Rows      []ComparisonRow `json:"rows"`
	Summary   []SummaryEntry  `json:"summary"`
	Matched   int             `json:"matched"`
	Unmatched int             `json:"unmatched"`
}

// Compare joins two snapshots of the same dataset on post_id and computes
// per-metric deltas. Every new-table row is preserved; a row without an
// old-side match is treated as previously 0 for every metric. Canonical
// tables always carry the full field set, so all count metrics participate.
func Compare(oldTable, newTable *domain.PostTable) (*ComparisonResult, error) {
	if oldTable == nil || newTable == nil {
		return nil, ErrNilSnapshot
	}

	oldByID := make(map[string]*domain.PostRecord, len(oldTable.Records))
	for i := range oldTable.Records {
		rec := &oldTable.Records[i]
		if _, ok := oldByID[rec.PostID]; !ok {
			oldByID[rec.PostID] = rec
		}
	}

	result := &ComparisonResult{Rows: make([]ComparisonRow, 0, len(newTable.Records))}
	for _, rec := range newTable.Records {
		row := ComparisonRow{
			Record:      rec,
			Differences: make(map[string]int64, len(CompareMetrics)),
		}
		old, matched := oldByID[rec.PostID]
		row.Matched = matched
		if matched {
			row.OldMetrics = make(map[string]int64, len(CompareMetrics))
			result.Matched++
		} else {
			result.Unmatched++
		}
		for _, m := range CompareMetrics {
			var oldValue int64
			if matched {
				oldValue = old.Metric(m)
				row.OldMetrics[m] = oldValue
			}
			row.Differences[m] = rec.Metric(m) - oldValue
		}
		result.Rows = append(result.Rows, row)
	}

	result.Summary = buildSummary(oldTable, newTable, result)
	return result, nil
}

func buildSummary(oldTable, newTable *domain.PostTable, result *ComparisonResult) []SummaryEntry {
	summary := []SummaryEntry{
		{Metric: "post_count (old)", Value: int64(oldTable.Len())},
		{Metric: "post_count (new)", Value: int64(newTable.Len())},
		{Metric: "post_count_difference", Value: int64(newTable.Len() - oldTable.Len())},
		{Metric: "matched_post_count", Value: int64(result.Matched)},
		{Metric: "unmatched_post_count", Value: int64(result.Unmatched)},
	}
	for _, m := range CompareMetrics {
		var oldTotal, newTotal int64
		for i := range oldTable.Records {
			oldTotal += oldTable.Records[i].Metric(m)
		}
		for i := range newTable.Records {
			newTotal += newTable.Records[i].Metric(m)
		}
		summary = append(summary,
			SummaryEntry{Metric: fmt.Sprintf("total_%s (old)", m), Value: oldTotal},
			SummaryEntry{Metric: fmt.Sprintf("total_%s (new)", m), Value: newTotal},
			SummaryEntry{Metric: fmt.Sprintf("total_%s_difference", m), Value: newTotal - oldTotal},
		)
	}
	return summary
}
