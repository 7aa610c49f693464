package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Content struct {
	ID                string    `gorm:"type:varchar(36);primary_key" json:"id"`
	Title             string    `gorm:"not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	YoutubeURL        string    `gorm:"column:youtube_url;not null" json:"youtube_url"`
	VideoKey          string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"video_key"`
	Visible           bool      `gorm:"default:true;index" json:"visible"`
	Category          *string   `gorm:"type:varchar(100)" json:"category,omitempty"`
	Duration          *string   `gorm:"type:varchar(32)" json:"duration,omitempty"`
	FormattedDuration *string   `gorm:"type:varchar(16)" json:"formatted_duration,omitempty"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type WatchLog struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	MemberID  string    `gorm:"type:varchar(36);not null;index" json:"member_id"`
	ContentID string    `gorm:"type:varchar(36);not null;index" json:"content_id"`
	WatchedAt time.Time `gorm:"not null" json:"watched_at"`
}

func (w *WatchLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.WatchedAt.IsZero() {
		w.WatchedAt = time.Now()
	}
	return nil
}
