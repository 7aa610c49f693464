package entity

type MemberCounts struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Pending   int64 `json:"pending"`
	Expired   int64 `json:"expired"`
	Cancelled int64 `json:"cancelled"`
}

type ContentCounts struct {
	Total   int64 `json:"total"`
	Visible int64 `json:"visible"`
}

type WatchCounts struct {
	Total          int64 `json:"total"`
	UniqueViewers  int64 `json:"unique_viewers"`
	UniqueContents int64 `json:"unique_contents"`
}

type CouponCounts struct {
	Available int64 `json:"available"`
	Used      int64 `json:"used"`
}

type TopContent struct {
	ContentID  string `json:"content_id"`
	Title      string `json:"title"`
	VideoKey   string `json:"video_key"`
	WatchCount int64  `json:"watch_count"`
}

// Usage is one storage figure. Estimated is set when Bytes comes from a
// row-count heuristic rather than a measurement.
type Usage struct {
	Bytes     int64  `json:"bytes"`
	Human     string `json:"human"`
	Limit     string `json:"limit"`
	Estimated bool   `json:"estimated"`
	Available bool   `json:"available"`
}

// QueueBacklog is the number of watch events waiting to be stored.
type QueueBacklog struct {
	Pending   int  `json:"pending"`
	Available bool `json:"available"`
}

type Dashboard struct {
	Members     MemberCounts  `json:"members"`
	Contents    ContentCounts `json:"contents"`
	Watches     WatchCounts   `json:"watches"`
	Coupons     CouponCounts  `json:"coupons"`
	TopContents []*TopContent `json:"top_contents"`
	Database    Usage         `json:"database"`
	Storage     Usage         `json:"storage"`
	WatchQueue  QueueBacklog  `json:"watch_queue"`
}
