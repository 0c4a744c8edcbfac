package dataprocessing

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"smmerge/pkg/contracts/domain"
)

// ErrEmptySource indicates a source without any rows; the caller skips the
// file and continues the batch.
var ErrEmptySource = errors.New("source contains no rows")

// Source is one readable tabular input together with its originating file
// name. The name feeds the platform, profile and region heuristics only, it
// is never opened here.
type Source struct {
	Filename string
	Rows     [][]string
}

// Reconciler turns raw export rows into a canonical PostTable. One instance
// can be reused across files; it holds no per-file state.
type Reconciler struct {
	logger *slog.Logger
}

// NewReconciler creates a reconciler. A nil logger falls back to the default.
func NewReconciler(logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{logger: logger}
}

// Reconcile normalizes one source file: header discovery, column mapping and
// deduplication, required-column backfill, per-field normalization and
// canonical reindexing. Row-level problems are recorded as diagnostics on
// the returned table; only a structurally unusable source returns an error.
func (r *Reconciler) Reconcile(src Source) (*domain.PostTable, error) {
	if len(src.Rows) == 0 {
		return nil, fmt.Errorf("reconcile %s: %w", src.Filename, ErrEmptySource)
	}

	headerIdx := DetectHeaderRow(src.Rows)
	headers := MapColumns(src.Rows[headerIdx])
	data := padRows(src.Rows[headerIdx+1:], len(headers))
	headers, data = mergeDuplicateColumns(headers, data)

	cols := make(map[string]int, len(headers))
	for i, name := range headers {
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	// Backfill structurally required columns. profile can often be
	// recovered from the file name; the rest get the 未知<field>
	// placeholder.
	defaults := make(map[string]string)
	for _, col := range requiredColumns {
		if _, ok := cols[col]; ok {
			continue
		}
		defaults[col] = unknownFieldPrefix + col
		if col == "profile" {
			if p, ok := ProfileFromFilename(src.Filename); ok {
				defaults[col] = p
			}
		}
		r.logger.Warn("missing required column, using fallback",
			slog.String("file", src.Filename),
			slog.String("column", col),
			slog.String("fallback", defaults[col]))
	}

	value := func(row []string, name string) string {
		if idx, ok := cols[name]; ok {
			return cellAt(row, idx)
		}
		return defaults[name]
	}

	foreign := IsOverseasFile(src.Filename)
	_, hasNetworkCol := cols["network"]
	var fileNetwork string
	switch {
	case foreign && !hasNetworkCol:
		fileNetwork = overseasNetworkPlaceholder
	case !foreign:
		fileNetwork = PlatformFromFilename(src.Filename)
	}

	// An existing post_id-ish column always beats synthesis.
	postIDIdx := -1
	for i, name := range headers {
		if strings.Contains(name, "post_id") {
			postIDIdx = i
			break
		}
	}

	linkIdx := -1
	for _, cand := range linkColumns {
		if idx, ok := cols[cand]; ok {
			linkIdx = idx
			break
		}
	}

	table := &domain.PostTable{SourceFile: src.Filename}
	for i, row := range data {
		if rowIsEmpty(row) {
			continue
		}

		rec := domain.PostRecord{}
		rec.Post = CleanPost(value(row, "post"))
		rec.Profile = value(row, "profile")

		rawDate := value(row, "published_date")
		published, ok := NormalizeDate(rawDate)
		if !ok {
			table.Diagnostics = append(table.Diagnostics, domain.Diagnostic{
				Row: i, Field: "published_date", Value: rawDate,
				Message: "unparseable date kept as-is",
			})
		}
		rec.PublishedDate = published
		rec.Date = DeriveDate(published)

		if foreign {
			rec.RegionLabel = domain.RegionOverseas
			rec.Network = fileNetwork
			if hasNetworkCol {
				rec.Network = strings.TrimSpace(value(row, "network"))
			}
		} else {
			rec.Network = fileNetwork
			rec.RegionLabel = RegionFromProfile(rec.Profile)
		}

		if postIDIdx >= 0 {
			rec.PostID = strings.TrimSpace(cellAt(row, postIDIdx))
		} else {
			rec.PostID = r.synthesizeID(&rec, i, table)
		}

		for _, m := range CompareMetrics {
			raw := value(row, m)
			v, ok := coerceInt(raw)
			if !ok {
				table.Diagnostics = append(table.Diagnostics, domain.Diagnostic{
					Row: i, Field: m, Value: raw,
					Message: "unparseable count coerced to 0",
				})
			}
			rec.SetMetric(m, v)
		}

		rec.PlaythroughRate = strings.TrimSpace(value(row, "playthrough_rate"))
		if rec.PlaythroughRate == "" {
			rec.PlaythroughRate = "0"
		}

		rawDur := value(row, "avg_play_duration")
		dur, ok := NormalizeDuration(rawDur)
		if !ok {
			table.Diagnostics = append(table.Diagnostics, domain.Diagnostic{
				Row: i, Field: "avg_play_duration", Value: rawDur,
				Message: "unparseable duration coerced to 0",
			})
		}
		rec.AvgPlayDuration = dur

		if linkIdx >= 0 {
			rec.VideoLink = strings.TrimSpace(cellAt(row, linkIdx))
		}

		rec.GameLabel = CategoryLabel(rec.Post)
		table.Records = append(table.Records, rec)
	}

	r.logger.Info("source file reconciled",
		slog.String("file", src.Filename),
		slog.Int("header_row", headerIdx),
		slog.Bool("overseas", foreign),
		slog.Int("records", len(table.Records)),
		slog.Int("diagnostics", len(table.Diagnostics)))

	return table, nil
}

// synthesizeID wraps post-id synthesis so that any per-row panic degrades to
// the error_row_<index> sentinel instead of aborting the file.
func (r *Reconciler) synthesizeID(rec *domain.PostRecord, idx int, table *domain.PostTable) (id string) {
	defer func() {
		if p := recover(); p != nil {
			id = fmt.Sprintf("error_row_%d", idx)
			table.Diagnostics = append(table.Diagnostics, domain.Diagnostic{
				Row: idx, Field: "post_id",
				Message: fmt.Sprintf("post id synthesis failed: %v", p),
			})
		}
	}()
	return SynthesizePostID(rec.Post, rec.Network, rec.Profile, rec.PublishedDate)
}

// padRows extends ragged rows with empty cells up to the header width.
func padRows(rows [][]string, width int) [][]string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= width {
			padded[i] = row
			continue
		}
		p := make([]string, width)
		copy(p, row)
		padded[i] = p
	}
	return padded
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
