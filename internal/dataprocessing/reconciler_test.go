package dataprocessing

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smmerge/pkg/contracts/domain"
)

func testReconciler() *Reconciler {
	return NewReconciler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReconcileDomesticFile(t *testing.T) {
	src := Source{
		Filename: "抖音-酒剑仙.xlsx",
		Rows: [][]string{
			{"数据导出报告"},
			{"作品名称", "发布时间", "播放量", "点赞量", "评论量", "分享量", "收藏量", "完播率", "平均播放时长", "URL"},
			{"黑神话悟空实机\n演示", "2024年08月20日 13:45:10", "1,000", "10", "2", "1", "3", "85%", "12.5秒", "https://example.com/v/1"},
			{"", "", ""},
			{"日常视频", "昨天", "abc", "5", "0", "0", "0", "", "", ""},
		},
	}

	table, err := testReconciler().Reconcile(src)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "抖音-酒剑仙.xlsx", table.SourceFile)

	first := table.Records[0]
	assert.Equal(t, "黑神话悟空实机 演示", first.Post)
	assert.Equal(t, "酒剑仙", first.Profile, "profile backfilled from file name")
	assert.Equal(t, "抖音", first.Network)
	assert.Equal(t, domain.RegionDomestic, first.RegionLabel)
	assert.Equal(t, "2024-08-20_13:45:10", first.PublishedDate)
	assert.Equal(t, "2024-08-20", first.Date)
	assert.Equal(t, "黑神话悟空实机 演示_抖音_酒剑仙_2024-08-20_13:45:10", first.PostID)
	assert.Equal(t, int64(1000), first.VideoViews)
	assert.Equal(t, int64(10), first.Like)
	assert.Equal(t, int64(2), first.Comment)
	assert.Equal(t, int64(1), first.Share)
	assert.Equal(t, int64(3), first.Collect)
	assert.Equal(t, int64(0), first.Subscribers)
	assert.Equal(t, "85%", first.PlaythroughRate)
	assert.Equal(t, 12.5, first.AvgPlayDuration)
	assert.Equal(t, "https://example.com/v/1", first.VideoLink)
	assert.Equal(t, "黑神话悟空", first.GameLabel)

	second := table.Records[1]
	assert.Equal(t, "昨天", second.PublishedDate, "unparseable date kept verbatim")
	assert.Equal(t, "", second.Date)
	assert.Equal(t, int64(0), second.VideoViews)
	assert.Equal(t, "0", second.PlaythroughRate)
	assert.Equal(t, "others", second.GameLabel)

	require.Len(t, table.Diagnostics, 2)
	assert.Equal(t, "published_date", table.Diagnostics[0].Field)
	assert.Equal(t, "video_views", table.Diagnostics[1].Field)
}

func TestReconcileOverseasFile(t *testing.T) {
	src := Source{
		Filename: "国外-Youtube数据.csv",
		Rows: [][]string{
			{"post_id", "post", "profile", "date", "video_views", "likes", "comments", "shares", "subscribers_gained_from_video", "network", "link"},
			{"yt-001", "Fortnite Highlights", "Global Gaming", "2024-08-20", "500", "40", "6", "2", "12", "Youtube", "https://youtu.be/x"},
		},
	}

	table, err := testReconciler().Reconcile(src)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Records[0]
	assert.Equal(t, "yt-001", rec.PostID, "existing post id beats synthesis")
	assert.Equal(t, domain.RegionOverseas, rec.RegionLabel)
	assert.Equal(t, "Youtube", rec.Network, "network column wins in overseas files")
	assert.Equal(t, "2024-08-20_00:00:00", rec.PublishedDate)
	assert.Equal(t, "2024-08-20", rec.Date)
	assert.Equal(t, int64(500), rec.VideoViews)
	assert.Equal(t, int64(12), rec.Subscribers)
	assert.Equal(t, "https://youtu.be/x", rec.VideoLink)
	assert.Equal(t, "堡垒之夜", rec.GameLabel)
	assert.Empty(t, table.Diagnostics)
}

func TestReconcileOverseasFileWithoutNetworkColumn(t *testing.T) {
	src := Source{
		Filename: "国外-数据汇总.xlsx",
		Rows: [][]string{
			{"post", "profile", "date", "video_views"},
			{"clip", "Team", "2024-01-05", "9"},
		},
	}

	table, err := testReconciler().Reconcile(src)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "国外平台", table.Records[0].Network)
	assert.Equal(t, domain.RegionOverseas, table.Records[0].RegionLabel)
}

func TestReconcileDuplicateColumnsAccumulate(t *testing.T) {
	src := Source{
		Filename: "快手-小号.xlsx",
		Rows: [][]string{
			{"作品名称", "发布时间", "点赞量", "点赞"},
			{"测试视频", "2024年01月02日", "5", "3"},
		},
	}

	table, err := testReconciler().Reconcile(src)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, int64(8), table.Records[0].Like)
}

func TestReconcileMissingRequiredColumns(t *testing.T) {
	src := Source{
		Filename: "data.xlsx",
		Rows: [][]string{
			{"播放量"},
			{"77"},
		},
	}

	table, err := testReconciler().Reconcile(src)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Records[0]
	assert.Equal(t, "未知post", rec.Post)
	assert.Equal(t, "未知profile", rec.Profile, "no file name heuristic applies")
	assert.Equal(t, "Unknown", rec.Network)
	assert.Equal(t, int64(77), rec.VideoViews)
}

func TestReconcileEmptySource(t *testing.T) {
	_, err := testReconciler().Reconcile(Source{Filename: "empty.xlsx"})
	assert.ErrorIs(t, err, ErrEmptySource)
}
