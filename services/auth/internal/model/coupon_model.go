package model

import "time"

type CouponModel struct {
	ID             string     `gorm:"type:varchar(36);primary_key" json:"id"`
	Code           string     `gorm:"uniqueIndex;not null" json:"code"`
	DurationMonths int        `gorm:"not null" json:"duration_months"`
	ExpiresAt      time.Time  `json:"expires_at"`
	IsUsed         bool       `gorm:"default:false" json:"is_used"`
	UsedBy         *string    `json:"used_by"`
	UsedAt         *time.Time `json:"used_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (CouponModel) TableName() string {
	return "coupons"
}
