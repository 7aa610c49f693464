package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchLogModel struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	MemberID  string    `gorm:"type:varchar(36);not null;index" json:"member_id"`
	ContentID string    `gorm:"type:varchar(36);not null;index" json:"content_id"`
	WatchedAt time.Time `gorm:"not null" json:"watched_at"`
}

func (WatchLogModel) TableName() string {
	return "watch_logs"
}

func (w *WatchLogModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
