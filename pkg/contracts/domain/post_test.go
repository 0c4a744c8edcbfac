package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRecordValuesMatchMasterColumns(t *testing.T) {
	rec := PostRecord{
		PostID:          "P1",
		Post:            "视频",
		Network:         "抖音",
		Profile:         "酒剑仙",
		RegionLabel:     RegionDomestic,
		PublishedDate:   "2024-08-20_13:45:10",
		Date:            "2024-08-20",
		VideoViews:      100,
		PlaythroughRate: "85%",
		AvgPlayDuration: 12.5,
		VideoLink:       "https://example.com/v/1",
		Like:            10,
		Comment:         2,
		Share:           1,
		Collect:         3,
		Subscribers:     7,
		GameLabel:       "others",
	}

	values := rec.Values()
	require.Len(t, values, len(MasterColumns))
	assert.Equal(t, "P1", values[0])
	assert.Equal(t, RegionDomestic, values[4])
	assert.Equal(t, int64(100), values[7])
	assert.Equal(t, 12.5, values[9])
	assert.Equal(t, "others", values[len(values)-1])
}

func TestPostRecordMetricRoundtrip(t *testing.T) {
	metrics := []string{"video_views", "like", "comment", "share", "collect", "subscribers"}

	var rec PostRecord
	for i, m := range metrics {
		rec.SetMetric(m, int64(i+1))
	}
	for i, m := range metrics {
		assert.Equal(t, int64(i+1), rec.Metric(m))
	}

	assert.Equal(t, int64(0), rec.Metric("playthrough_rate"), "non-count field reads as 0")
	rec.SetMetric("nonexistent", 99)
	assert.Equal(t, int64(0), rec.Metric("nonexistent"))
}

func TestPostTableLen(t *testing.T) {
	var nilTable *PostTable
	assert.Equal(t, 0, nilTable.Len())
	assert.Equal(t, 1, (&PostTable{Records: []PostRecord{{}}}).Len())
}
