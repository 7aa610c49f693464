package entity

import "time"

type CouponStatus string

const (
	CouponAvailable CouponStatus = "available"
	CouponUsed      CouponStatus = "used"
	CouponExpired   CouponStatus = "expired"
)

type Coupon struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	DurationMonths int          `json:"duration_months"`
	ExpiresAt      time.Time    `json:"expires_at"`
	IsUsed         bool         `json:"is_used"`
	UsedBy         *string      `json:"used_by,omitempty"`
	UsedAt         *time.Time   `json:"used_at,omitempty"`
	CreatedBy      *string      `json:"created_by,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	Status         CouponStatus `json:"status"`
}

// StatusAt derives the badge shown next to a coupon.
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

type NewCoupon struct {
	Code           string
	DurationMonths int
	ExpiresAt      *time.Time
	CreatedBy      string
}
