package domain

// Region labels applied to every normalized record.
const (
	RegionDomestic = "国内"
	RegionOverseas = "国外"
	RegionUnknown  = "未知"
)

// MasterColumns is the canonical column order of a normalized table.
// Every exported table exposes exactly these columns in this order.
var MasterColumns = []string{
	"post_id", "post", "network", "profile", "domestic_overseas_label",
	"published_date", "date",
	"video_views", "playthrough_rate", "avg_play_duration", "video_link",
	"like", "comment", "share", "collect", "subscribers",
	"game_label",
}

// PostRecord represents one social-media post normalized into the canonical
// schema. Nullable string fields (published_date, date, video_link) use the
// empty string as the null value.
type PostRecord struct {
	PostID          string  `json:"post_id"`
	Post            string  `json:"post"`
	Network         string  `json:"network"`
	Profile         string  `json:"profile"`
	RegionLabel     string  `json:"domestic_overseas_label"`
	PublishedDate   string  `json:"published_date"`
	Date            string  `json:"date"`
	VideoViews      int64   `json:"video_views"`
	PlaythroughRate string  `json:"playthrough_rate"`
	AvgPlayDuration float64 `json:"avg_play_duration"`
	VideoLink       string  `json:"video_link"`
	Like            int64   `json:"like"`
	Comment         int64   `json:"comment"`
	Share           int64   `json:"share"`
	Collect         int64   `json:"collect"`
	Subscribers     int64   `json:"subscribers"`
	GameLabel       string  `json:"game_label"`
}

// Metric returns the value of one of the integer count fields by its
// canonical column name. Unknown names return 0.
func (r *PostRecord) Metric(name string) int64 {
	switch name {
	case "video_views":
		return r.VideoViews
	case "like":
		return r.Like
	case "comment":
		return r.Comment
	case "share":
		return r.Share
	case "collect":
		return r.Collect
	case "subscribers":
		return r.Subscribers
	}
	return 0
}

// SetMetric assigns one of the integer count fields by its canonical column
// name. Unknown names are ignored.
func (r *PostRecord) SetMetric(name string, v int64) {
	switch name {
	case "video_views":
		r.VideoViews = v
	case "like":
		r.Like = v
	case "comment":
		r.Comment = v
	case "share":
		r.Share = v
	case "collect":
		r.Collect = v
	case "subscribers":
		r.Subscribers = v
	}
}

// Values returns the record's cell values in MasterColumns order, ready for
// row-wise export. Null string fields become empty cells.
func (r *PostRecord) Values() []interface{} {
	return []interface{}{
		r.PostID, r.Post, r.Network, r.Profile, r.RegionLabel,
		r.PublishedDate, r.Date,
		r.VideoViews, r.PlaythroughRate, r.AvgPlayDuration, r.VideoLink,
		r.Like, r.Comment, r.Share, r.Collect, r.Subscribers,
		r.GameLabel,
	}
}

// Diagnostic records a recovered field- or row-level problem encountered
// while normalizing a source file. Diagnostics never abort processing; the
// affected field carries its documented fallback value instead.
type Diagnostic struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// PostTable is an ordered collection of normalized records produced from a
// single source file (or from merging several of them).
type PostTable struct {
	SourceFile  string       `json:"source_file,omitempty"`
	Records     []PostRecord `json:"records"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Len returns the number of records in the table.
func (t *PostTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
