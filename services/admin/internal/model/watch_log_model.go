package model

import "time"

type WatchLogModel struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	MemberID  string    `gorm:"type:varchar(36);not null" json:"member_id"`
	ContentID string    `gorm:"type:varchar(36);not null" json:"content_id"`
	WatchedAt time.Time `json:"watched_at"`
}

func (WatchLogModel) TableName() string {
	return "watch_logs"
}
