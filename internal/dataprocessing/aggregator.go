package dataprocessing

import (
	"smmerge/pkg/contracts/domain"
)

// Merge concatenates canonical tables preserving row order across files and
// collapses duplicate post_id keys. The first occurrence keeps its
// non-numeric fields; its count fields become the sum over all occurrences
// of the key. subscribers is a point-in-time figure and is never summed.
func Merge(tables []*domain.PostTable) *domain.PostTable {
	out := &domain.PostTable{}
	index := make(map[string]int)

	for _, t := range tables {
		if t == nil {
			continue
		}
		out.Diagnostics = append(out.Diagnostics, t.Diagnostics...)
		for _, rec := range t.Records {
			pos, dup := index[rec.PostID]
			if !dup {
				index[rec.PostID] = len(out.Records)
				out.Records = append(out.Records, rec)
				continue
			}
			first := &out.Records[pos]
			for _, m := range AggregateMetrics {
				first.SetMetric(m, first.Metric(m)+rec.Metric(m))
			}
		}
	}
	return out
}
