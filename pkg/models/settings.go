package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultExpirationMonths = 3

type SystemSettings struct {
	ID                      string    `gorm:"type:varchar(36);primary_key" json:"id"`
	AutoApproveSignup       bool      `gorm:"default:false" json:"auto_approve_signup"`
	DefaultExpirationMonths int       `gorm:"default:3" json:"default_expiration_months"`
	CreatedAt               time.Time `gorm:"index" json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (SystemSettings) TableName() string {
	return "system_settings"
}

func (s *SystemSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// DefaultSettings is what readers see when no settings row exists.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		AutoApproveSignup:       false,
		DefaultExpirationMonths: DefaultExpirationMonths,
	}
}
