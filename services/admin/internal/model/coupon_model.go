package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponModel struct {
	ID             string     `gorm:"type:varchar(36);primary_key" json:"id"`
	Code           string     `gorm:"uniqueIndex;not null" json:"code"`
	DurationMonths int        `gorm:"not null" json:"duration_months"`
	ExpiresAt      time.Time  `json:"expires_at"`
	IsUsed         bool       `gorm:"default:false" json:"is_used"`
	UsedBy         *string    `json:"used_by"`
	UsedAt         *time.Time `json:"used_at"`
	CreatedBy      *string    `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (CouponModel) TableName() string {
	return "coupons"
}

func (c *CouponModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
