package entity

import "time"

type Content struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	YoutubeURL        string    `json:"youtube_url"`
	VideoKey          string    `json:"video_key"`
	Visible           bool      `json:"visible"`
	Category          *string   `json:"category,omitempty"`
	Duration          *string   `json:"duration,omitempty"`
	FormattedDuration *string   `json:"formatted_duration,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ContentFilter struct {
	Visible  *bool
	Page     int
	PageSize int
}

type ContentPage struct {
	Items      []*Content `json:"items"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

type ContentInput struct {
	Title       string
	Description string
	YoutubeURL  string
	VideoKey    string
	Category    string
	Visible     *bool
	Duration    string
}

// ContentUpdate carries only the fields the admin changed.
type ContentUpdate struct {
	Title       *string
	Description *string
	YoutubeURL  *string
	VideoKey    *string
	Category    *string
	Visible     *bool
}

type YouTubeInfo struct {
	VideoID           string `json:"video_id"`
	ThumbnailURL      string `json:"thumbnail_url"`
	Duration          string `json:"duration"`
	FormattedDuration string `json:"formatted_duration"`
	Title             string `json:"title"`
	Description       string `json:"description"`
}
