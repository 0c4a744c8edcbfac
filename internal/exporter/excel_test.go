package exporter

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"smmerge/internal/dataprocessing"
	"smmerge/pkg/contracts/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExcelWriterWriteTable(t *testing.T) {
	table := &domain.PostTable{
		Records: []domain.PostRecord{
			{
				PostID:          "P1",
				Post:            "视频一",
				Network:         "抖音",
				Profile:         "酒剑仙",
				RegionLabel:     domain.RegionDomestic,
				PublishedDate:   "2024-08-20_13:45:10",
				Date:            "2024-08-20",
				VideoViews:      1000,
				PlaythroughRate: "85%",
				AvgPlayDuration: 12.5,
				Like:            10,
				GameLabel:       "others",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "merged_data_20240820_134510.xlsx")
	require.NoError(t, NewExcelWriter(discardLogger()).WriteTable(path, table))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.MasterColumns, rows[0])
	assert.Equal(t, "P1", rows[1][0])
	assert.Equal(t, "1000", rows[1][7])
	assert.Equal(t, "12.5", rows[1][9])
	assert.Equal(t, "others", rows[1][16])
}

func TestExcelWriterWriteComparison(t *testing.T) {
	result := &dataprocessing.ComparisonResult{
		Rows: []dataprocessing.ComparisonRow{
			{
				Record:  domain.PostRecord{PostID: "A", VideoViews: 150},
				Matched: true,
				OldMetrics: map[string]int64{
					"video_views": 100, "like": 0, "comment": 0,
					"share": 0, "collect": 0, "subscribers": 0,
				},
				Differences: map[string]int64{
					"video_views": 50, "like": 0, "comment": 0,
					"share": 0, "collect": 0, "subscribers": 0,
				},
			},
			{
				Record:  domain.PostRecord{PostID: "NEW", VideoViews: 30},
				Matched: false,
				Differences: map[string]int64{
					"video_views": 30, "like": 0, "comment": 0,
					"share": 0, "collect": 0, "subscribers": 0,
				},
			},
		},
		Summary: []dataprocessing.SummaryEntry{
			{Metric: "post_count (old)", Value: 1},
			{Metric: "post_count (new)", Value: 2},
			{Metric: "post_count_difference", Value: 1},
		},
		Matched:   1,
		Unmatched: 1,
	}

	path := filepath.Join(t.TempDir(), "compared_data_20240820_134510.xlsx")
	require.NoError(t, NewExcelWriter(discardLogger()).WriteComparison(path, result))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Data", "Calculation"}, f.GetSheetList())

	rows, err := f.GetRows("Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	oldViewsCol := len(domain.MasterColumns)
	assert.Equal(t, "video_views_old", rows[0][oldViewsCol])
	assert.Equal(t, "video_views_difference", rows[0][oldViewsCol+1])
	assert.Equal(t, "100", rows[1][oldViewsCol])
	assert.Equal(t, "50", rows[1][oldViewsCol+1])
	assert.Equal(t, "", rows[2][oldViewsCol], "unmatched rows have no old value")
	assert.Equal(t, "30", rows[2][oldViewsCol+1])

	calc, err := f.GetRows("Calculation")
	require.NoError(t, err)
	require.Len(t, calc, 4)
	assert.Equal(t, []string{"Metrics", "Values"}, calc[0])
	assert.Equal(t, []string{"post_count (old)", "1"}, calc[1])
	assert.Equal(t, []string{"post_count_difference", "1"}, calc[3])
}
