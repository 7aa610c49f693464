package usecase

import (
	"errors"
	"fmt"

	"pilates-club/services/auth/internal/entity"
)

var (
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidPIN      = errors.New("PIN must be 6 digits")
	ErrMemberNotFound  = errors.New("member not found")
	ErrPINMismatch     = errors.New("PIN does not match")
	ErrPendingApproval = errors.New("membership approval is pending")
	ErrAccountInactive = errors.New("account is not active")

	ErrRegistrationFieldsRequired = errors.New("name, email and PIN are required")
	ErrPINConfirmMismatch         = errors.New("PIN confirmation does not match")
	ErrEmailTaken                 = errors.New("email is already registered")
	ErrInvalidCoupon              = errors.New("invalid coupon code")
	ErrCouponExpired              = errors.New("coupon has expired")
)

// InactiveError reports a login by an expired or cancelled member.
type InactiveError struct {
	Status entity.MemberStatus
}

func (e *InactiveError) Error() string {
	return fmt.Sprintf("account is %s; contact an administrator", e.Status)
}

func (e *InactiveError) Is(target error) bool {
	return target == ErrAccountInactive
}
