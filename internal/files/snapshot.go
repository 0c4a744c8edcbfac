package files

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"smmerge/pkg/contracts/domain"
)

// SchemaMismatchError reports a snapshot workbook missing the key columns a
// comparison needs. The comparison call fails as a whole; no partial result
// is produced.
type SchemaMismatchError struct {
	Path    string
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("snapshot %s is missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

// snapshotKeyColumns must be present in any workbook used as a comparison
// side.
var snapshotKeyColumns = []string{"post_id", "video_views"}

// LoadSnapshot reads a previously exported canonical workbook back into a
// PostTable. The first row must be the canonical header; key columns absent
// from it yield a SchemaMismatchError.
func LoadSnapshot(path string) (*domain.PostTable, error) {
	rows, err := readExcelRows(path)
	if err != nil {
		return nil, &UnreadableSourceError{Path: path, Reason: err.Error()}
	}
	if len(rows) == 0 {
		return nil, &UnreadableSourceError{Path: path, Reason: "workbook has no rows"}
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	var missing []string
	for _, key := range snapshotKeyColumns {
		if _, ok := cols[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Path: path, Missing: missing}
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}
	count := func(row []string, name string) int64 {
		v := strings.TrimSpace(cell(row, name))
		if v == "" {
			return 0
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return 0
		}
		return int64(f)
	}

	table := &domain.PostTable{SourceFile: filepath.Base(path)}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		duration, _ := strconv.ParseFloat(strings.TrimSpace(cell(row, "avg_play_duration")), 64)
		table.Records = append(table.Records, domain.PostRecord{
			PostID:          strings.TrimSpace(cell(row, "post_id")),
			Post:            cell(row, "post"),
			Network:         cell(row, "network"),
			Profile:         cell(row, "profile"),
			RegionLabel:     cell(row, "domestic_overseas_label"),
			PublishedDate:   cell(row, "published_date"),
			Date:            cell(row, "date"),
			VideoViews:      count(row, "video_views"),
			PlaythroughRate: cell(row, "playthrough_rate"),
			AvgPlayDuration: duration,
			VideoLink:       cell(row, "video_link"),
			Like:            count(row, "like"),
			Comment:         count(row, "comment"),
			Share:           count(row, "share"),
			Collect:         count(row, "collect"),
			Subscribers:     count(row, "subscribers"),
			GameLabel:       cell(row, "game_label"),
		})
	}
	return table, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
