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

type WatchLog struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	ContentID string    `json:"content_id"`
	WatchedAt time.Time `json:"watched_at"`
}
