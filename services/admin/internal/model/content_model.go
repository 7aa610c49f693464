package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentModel struct {
	ID                string    `gorm:"type:varchar(36);primary_key" json:"id"`
	Title             string    `gorm:"not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	YoutubeURL        string    `gorm:"column:youtube_url;not null" json:"youtube_url"`
	VideoKey          string    `gorm:"uniqueIndex;not null" json:"video_key"`
	Visible           bool      `gorm:"not null" json:"visible"`
	Category          *string   `json:"category"`
	Duration          *string   `json:"duration"`
	FormattedDuration *string   `json:"formatted_duration"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (ContentModel) TableName() string {
	return "contents"
}

func (c *ContentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
