package model

import "time"

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
