package entity

import "time"

type MemberStatus string

const (
	StatusPending   MemberStatus = "pending"
	StatusActive    MemberStatus = "active"
	StatusExpired   MemberStatus = "expired"
	StatusCancelled MemberStatus = "cancelled"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

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

// MemberFilter selects one status tab; an empty Status means all members.
type MemberFilter struct {
	Status   MemberStatus
	Page     int
	PageSize int
}

type MemberPage struct {
	Items      []*Member `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

type NewMember struct {
	Name      string
	Nickname  string
	BirthDate *time.Time
	Email     string
	PIN       string
	ExpiredAt *time.Time
}

// ExpirationChange sets expired_at either to an explicit date or to now
// plus Months.
type ExpirationChange struct {
	ExpiredAt *time.Time
	Months    int
}
