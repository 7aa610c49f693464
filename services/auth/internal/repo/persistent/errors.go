package persistent

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrCouponUnavailable = errors.New("coupon is used or expired")
)
