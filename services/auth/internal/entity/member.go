package entity

import "time"

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
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Nickname     string       `json:"nickname"`
	BirthDate    *time.Time   `json:"birth_date,omitempty"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Status       MemberStatus `json:"status"`
	Role         MemberRole   `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiredAt    *time.Time   `json:"expired_at,omitempty"`
	CouponCode   *string      `json:"coupon_code,omitempty"`
}

type Coupon struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	DurationMonths int        `json:"duration_months"`
	ExpiresAt      time.Time  `json:"expires_at"`
	IsUsed         bool       `json:"is_used"`
	UsedBy         *string    `json:"used_by,omitempty"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
}

type Settings struct {
	AutoApproveSignup       bool `json:"auto_approve_signup"`
	DefaultExpirationMonths int  `json:"default_expiration_months"`
}

// Session is the result of a successful login.
type Session struct {
	Member    *Member   `json:"user"`
	Token     string    `json:"token"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Registration struct {
	Name       string
	Nickname   string
	BirthDate  *time.Time
	Email      string
	PIN        string
	PINConfirm string
	CouponCode string
}

type RegistrationResult struct {
	Member       *Member `json:"member"`
	AutoApproved bool    `json:"auto_approved"`
}
