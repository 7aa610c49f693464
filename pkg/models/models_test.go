package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMember_BeforeCreate(t *testing.T) {
	member := &Member{
		Name:         "Kim",
		Email:        "kim@example.com",
		PasswordHash: "hash",
		Status:       StatusPending,
		Role:         RoleUser,
	}

	// BeforeCreate should set ID if empty
	err := member.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, member.ID)
}

func TestMember_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	member := &Member{
		ID:    existingID,
		Name:  "Kim",
		Email: "kim@example.com",
	}

	err := member.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, member.ID)
}

func TestContent_BeforeCreate(t *testing.T) {
	content := &Content{
		Title:      "Core basics",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		VideoKey:   "Ab3dE6gH",
		Visible:    true,
	}

	err := content.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, content.ID)
}

func TestWatchLog_BeforeCreate(t *testing.T) {
	log := &WatchLog{MemberID: "member-1", ContentID: "content-1"}

	err := log.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.False(t, log.WatchedAt.IsZero())
}

func TestWatchLog_BeforeCreate_KeepsWatchedAt(t *testing.T) {
	watched := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	log := &WatchLog{MemberID: "member-1", ContentID: "content-1", WatchedAt: watched}

	err := log.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, watched, log.WatchedAt)
}

func TestCoupon_BeforeCreate(t *testing.T) {
	coupon := &Coupon{Code: "WELCOME", DurationMonths: 1, ExpiresAt: time.Now().AddDate(0, 3, 0)}

	err := coupon.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, coupon.ID)
}

func TestCoupon_StatusAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		coupon   Coupon
		expected CouponStatus
	}{
		{name: "used wins over expired", coupon: Coupon{IsUsed: true, ExpiresAt: now.AddDate(0, -1, 0)}, expected: CouponUsed},
		{name: "expired", coupon: Coupon{ExpiresAt: now.Add(-time.Second)}, expected: CouponExpired},
		{name: "expires exactly now", coupon: Coupon{ExpiresAt: now}, expected: CouponAvailable},
		{name: "available", coupon: Coupon{ExpiresAt: now.AddDate(0, 1, 0)}, expected: CouponAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coupon.StatusAt(now))
		})
	}
}

func TestSystemSettings_Defaults(t *testing.T) {
	settings := DefaultSettings()

	assert.False(t, settings.AutoApproveSignup)
	assert.Equal(t, 3, settings.DefaultExpirationMonths)
	assert.Equal(t, "system_settings", SystemSettings{}.TableName())
}
