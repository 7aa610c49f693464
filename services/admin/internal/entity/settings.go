package entity

import "time"

const (
	MinExpirationMonths = 1
	MaxExpirationMonths = 120
)

type Settings struct {
	ID                      string    `json:"id,omitempty"`
	AutoApproveSignup       bool      `json:"auto_approve_signup"`
	DefaultExpirationMonths int       `json:"default_expiration_months"`
	UpdatedAt               time.Time `json:"updated_at,omitempty"`
}

type ApprovalSettings struct {
	Settings
	PendingCount int64 `json:"pending_count"`
}
