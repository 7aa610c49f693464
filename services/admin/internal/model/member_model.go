package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	ID           string     `gorm:"type:varchar(36);primary_key" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Nickname     string     `json:"nickname"`
	BirthDate    *time.Time `gorm:"type:date" json:"birth_date"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Role         string     `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiredAt    *time.Time `json:"expired_at"`
	CouponCode   *string    `json:"coupon_code"`
}

func (MemberModel) TableName() string {
	return "members"
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
