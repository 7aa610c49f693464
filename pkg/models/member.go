package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberStatus string

const (
	StatusPending   MemberStatus = "pending"
	StatusActive    MemberStatus = "active"
	StatusExpired   MemberStatus = "expired"
	StatusCancelled MemberStatus = "cancelled"
)

type MemberRole string

const (
	RoleAdmin MemberRole = "admin"
	RoleUser  MemberRole = "user"
)

type Member struct {
	ID           string       `gorm:"type:varchar(36);primary_key" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Nickname     string       `json:"nickname"`
	BirthDate    *time.Time   `gorm:"type:date" json:"birth_date,omitempty"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Status       MemberStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Role         MemberRole   `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
	ExpiredAt    *time.Time   `json:"expired_at,omitempty"`
	CouponCode   *string      `gorm:"type:varchar(64)" json:"coupon_code,omitempty"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
