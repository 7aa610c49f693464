package entity

import "time"

const UncategorizedLabel = "Uncategorized"

// Video is a catalog entry enriched for display.
type Video struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	VideoKey          string    `json:"video_key"`
	Category          string    `json:"category"`
	YoutubeID         string    `json:"youtube_id"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	FormattedDuration string    `json:"formatted_duration"`
	CreatedAt         time.Time `json:"created_at"`
}

type CategoryGroup struct {
	Category string   `json:"category"`
	Videos   []*Video `json:"videos"`
}

type Catalog struct {
	Videos []*Video         `json:"videos"`
	Groups []*CategoryGroup `json:"groups,omitempty"`
	Total  int              `json:"total"`
}

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

type ListOptions struct {
	Sort     SortOrder
	Category string
	Group    bool
}

type PlayerConfig struct {
	Provider string            `json:"provider"`
	EmbedURL string            `json:"embed_url"`
	Params   map[string]string `json:"params"`
}

type WatchPage struct {
	Video  *Video       `json:"video"`
	Player PlayerConfig `json:"player"`
}
