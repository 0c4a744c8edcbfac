package dataprocessing

// columnSynonyms maps known raw header variants from Chinese and English
// platform exports to canonical field names. Mapping looks keys up by the
// normalized label; header detection matches raw trimmed cell text against
// the same keys.
var columnSynonyms = map[string]string{
	// Chinese exports
	"视频id":    "post_id",
	"作品名称":    "post",
	"作品":      "post",
	"笔记标题":    "post",
	"视频标题":    "post",
	"视频描述":    "post",
	"账号":      "profile",
	"发布时间":    "published_date",
	"首次发布时间":  "published_date",
	"播放量":     "video_views",
	"观看量":     "video_views",
	"阅读（播放）":  "video_views",
	"完播率":     "playthrough_rate",
	"平均播放时长":  "avg_play_duration",
	"人均观看时长":  "avg_play_duration",
	"点赞量":     "like",
	"点赞":      "like",
	"喜欢量":     "like",
	"喜欢":      "like",
	"评论量":     "comment",
	"评论":      "comment",
	"分享量":     "share",
	"分享":      "share",
	"推荐":      "share",
	"收藏量":     "collect",
	"收藏":      "collect",
	"粉丝增量":    "subscribers",
	"涨粉量":     "subscribers",
	"涨粉":      "subscribers",
	"关注量":     "subscribers",

	// English exports
	"post_id":                              "post_id",
	"subscribers_gained_from_video":        "subscribers",
	"video_views":                          "video_views",
	"average_video_time_watched_seconds_":  "avg_play_duration",
	"full_video_view_rate":                 "playthrough_rate",
	"likes":                                "like",
	"comments":                             "comment",
	"shares":                               "share",
	"date":                                 "published_date",
	"profile":                              "profile",
	"network":                              "network",
	"post":                                 "post",
	"link":                                 "video_link",
	"video_link":                           "video_link",
	"video_url":                            "video_link",
	"url":                                  "video_link",
}

// platformNames lists the platforms recognized in file names, in match
// priority order. The first name found as a substring wins.
var platformNames = []string{
	"抖音",
	"小红书",
	"快手",
	"哔哩哔哩",
	"视频号",
	"微信视频号",
	"B站",
	"X",
	"Youtube",
	"Facebook",
	"TikTok",
}

// categoryRule binds a game label to the post-text keywords that select it.
type categoryRule struct {
	Label    string
	Keywords []string
}

// categoryRules is evaluated in order against the lowercased post text; the
// first rule with any keyword contained in the text wins.
var categoryRules = []categoryRule{
	{"poe2", []string{"poe", "流放之路", "流放", "pathofexile", "path of exile"}},
	{"PUBG", []string{"pubg", "吃鸡", "绝地求生", "和平精英", "游戏小剧场"}},
	{"Warframe", []string{"warframe", "星际战甲"}},
	{"P2", []string{"exoborne"}},
	{"Dyinglight", []string{"消逝的光芒", "消光", "拉万", "lawan", "克兰", "clane", "消失的光芒", "dyinglight", "dying light"}},
	{"Nikke", []string{"nikke", "妮姬", "胜利女神"}},
	{"英雄联盟", []string{"leagueoflegends", "lol", "英雄联盟"}},
	{"王者荣耀", []string{"王者荣耀", "hok", "honor of kings", "honorofkings"}},
	{"暗区突围", []string{"暗区突围"}},
	{"TGA", []string{"tga"}},
	{"堡垒之夜", []string{"堡垒之夜", "fortnite"}},
	{"Zenless", []string{"zenless"}},
	{"Roblox", []string{"roblox", "罗布乐思"}},
	{"无尽对决", []string{"无尽对决", "mlbb"}},
	{"绝区零", []string{"绝区零"}},
	{"Diablo", []string{"diablo", "暗黑破坏神", "暗黑"}},
	{"美国大选", []string{"美国大选"}},
	{"黑神话悟空", []string{"黑神话", "黑猴"}},
	{"我的世界", []string{"我的世界"}},
	{"Dune", []string{"沙丘"}},
	{"月光骑士", []string{"月光骑士"}},
	{"原子之心", []string{"原子之心"}},
	{"漫威争锋", []string{"漫威争锋", "marvel"}},
	{"怪物猎人", []string{"怪物猎人", "monsterhunter"}},
}

// defaultCategory is assigned when no category keyword matches.
const defaultCategory = "others"

// linkColumns is the priority list of canonical column names that can supply
// video_link. The first one present in a file wins.
var linkColumns = []string{"link", "video_link", "video_url", "url", "ahmain"}

// AggregateMetrics are the count fields summed when duplicate post_id keys
// are collapsed during a merge. subscribers is deliberately excluded.
var AggregateMetrics = []string{"video_views", "like", "comment", "share", "collect"}

// CompareMetrics are the count fields diffed between two snapshots.
var CompareMetrics = []string{"video_views", "like", "comment", "share", "collect", "subscribers"}

// requiredColumns must exist before per-row normalization; missing ones are
// backfilled from file-name heuristics or the 未知<field> placeholder.
var requiredColumns = []string{"post", "profile", "published_date"}

const (
	// overseasFileMarker in a file name forces the overseas branch.
	overseasFileMarker = "国外"
	// overseasNetworkPlaceholder is used for overseas files without a
	// network column of their own.
	overseasNetworkPlaceholder = "国外平台"
	// unknownNetwork is the domestic fallback when no platform name is
	// found in the file name.
	unknownNetwork = "Unknown"
	// unknownFieldPrefix prefixes the placeholder for a backfilled
	// required column, e.g. 未知profile.
	unknownFieldPrefix = "未知"
	// durationUnit is stripped from avg_play_duration values in Chinese
	// exports.
	durationUnit = "秒"
)

// profileOverseasKeywords mark a profile as overseas in the domestic branch.
var profileOverseasKeywords = []string{"海外", "国际", "Global"}
