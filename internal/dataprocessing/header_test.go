package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectHeaderRow(t *testing.T) {
	tests := []struct {
		name   string
		window [][]string
		want   int
	}{
		{
			name: "header on first row",
			window: [][]string{
				{"作品名称", "点赞量", "评论量"},
				{"某视频", "10", "2"},
			},
			want: 0,
		},
		{
			name: "header after preamble rows",
			window: [][]string{
				{"数据导出报告"},
				{"统计周期: 2024-08"},
				{"作品名称", "账号", "发布时间", "播放量"},
				{"某视频", "某账号", "2024年08月20日", "100"},
			},
			want: 2,
		},
		{
			name: "tie resolves to earliest row",
			window: [][]string{
				{"post", "something"},
				{"something", "profile"},
			},
			want: 0,
		},
		{
			name: "no matches falls back to row zero",
			window: [][]string{
				{"alpha", "beta"},
				{"gamma", "delta"},
			},
			want: 0,
		},
		{
			name: "cells are trimmed before matching",
			window: [][]string{
				{"随便写点"},
				{" 作品名称 ", "  点赞量"},
			},
			want: 1,
		},
		{
			name: "only the first five rows are scanned",
			window: [][]string{
				{"a"}, {"b"}, {"c"}, {"d"}, {"e"},
				{"作品名称", "点赞量"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectHeaderRow(tt.window))
		})
	}
}
