package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponStatus string

const (
	CouponAvailable CouponStatus = "available"
	CouponUsed      CouponStatus = "used"
	CouponExpired   CouponStatus = "expired"
)

type Coupon struct {
	ID             string     `gorm:"type:varchar(36);primary_key" json:"id"`
	Code           string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	DurationMonths int        `gorm:"not null;default:1" json:"duration_months"`
	ExpiresAt      time.Time  `gorm:"not null" json:"expires_at"`
	IsUsed         bool       `gorm:"default:false" json:"is_used"`
	UsedBy         *string    `gorm:"type:varchar(36)" json:"used_by,omitempty"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	CreatedBy      *string    `gorm:"type:varchar(36)" json:"created_by,omitempty"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// StatusAt derives the coupon badge; it is never stored.
func (c *Coupon) StatusAt(now time.Time) CouponStatus {
	switch {
	case c.IsUsed:
		return CouponUsed
	case c.ExpiresAt.Before(now):
		return CouponExpired
	default:
		return CouponAvailable
	}
}
