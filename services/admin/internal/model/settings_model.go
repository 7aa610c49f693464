package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsModel struct {
	ID                      string    `gorm:"type:varchar(36);primary_key" json:"id"`
	AutoApproveSignup       bool      `json:"auto_approve_signup"`
	DefaultExpirationMonths int       `json:"default_expiration_months"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (SettingsModel) TableName() string {
	return "system_settings"
}

func (s *SettingsModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
