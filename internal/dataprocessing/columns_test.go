package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"trims and lowercases", "  Video Views ", "video_views"},
		{"punctuation becomes underscores", "Average Video Time Watched (Seconds)", "average_video_time_watched_seconds_"},
		{"full width parentheses", "阅读（播放）", "阅读_播放_"},
		{"mixed run collapses to one underscore", "a_-b", "a_b"},
		{"already normalized", "video_views", "video_views"},
		{"empty label", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLabel(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeLabel(got), "normalization must be idempotent")
		})
	}
}

func TestMapColumn(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"chinese synonym", "点赞量", "like"},
		{"english synonym", "Likes", "like"},
		{"url maps to link", "URL", "video_link"},
		{"duration synonym", "Average Video Time Watched (Seconds)", "avg_play_duration"},
		{"unknown label passes through normalized", "自定义 列", "自定义_列"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapColumn(tt.label))
		})
	}
}

func TestMapColumns(t *testing.T) {
	got := MapColumns([]string{"作品名称", "点赞量", "其它"})
	assert.Equal(t, []string{"post", "like", "其它"}, got)
}

func TestMergeDuplicateColumns(t *testing.T) {
	t.Run("numeric duplicates accumulate into first column", func(t *testing.T) {
		headers := []string{"post", "like", "like"}
		rows := [][]string{
			{"a", "5", "3"},
			{"b", "1,000", "2"},
		}
		gotHeaders, gotRows := mergeDuplicateColumns(headers, rows)
		assert.Equal(t, []string{"post", "like"}, gotHeaders)
		assert.Equal(t, [][]string{
			{"a", "8"},
			{"b", "1002"},
		}, gotRows)
	})

	t.Run("text duplicates keep first non-empty value", func(t *testing.T) {
		headers := []string{"profile", "profile"}
		rows := [][]string{
			{"", "备用账号"},
			{"主账号", "备用账号"},
		}
		gotHeaders, gotRows := mergeDuplicateColumns(headers, rows)
		assert.Equal(t, []string{"profile"}, gotHeaders)
		assert.Equal(t, [][]string{{"备用账号"}, {"主账号"}}, gotRows)
	})

	t.Run("no duplicates leaves everything untouched", func(t *testing.T) {
		headers := []string{"post", "like"}
		rows := [][]string{{"a", "1"}}
		gotHeaders, gotRows := mergeDuplicateColumns(headers, rows)
		assert.Equal(t, headers, gotHeaders)
		assert.Equal(t, rows, gotRows)
	})
}

func TestColumnIsNumeric(t *testing.T) {
	rows := [][]string{
		{"1,234", "abc", ""},
		{"5.5", "7", ""},
	}
	assert.True(t, columnIsNumeric(rows, 0))
	assert.False(t, columnIsNumeric(rows, 1))
	assert.True(t, columnIsNumeric(rows, 2), "empty column is vacuously numeric")
}
