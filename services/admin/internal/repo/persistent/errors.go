package persistent

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateVideoKey   = errors.New("video key already exists")
	ErrDuplicateCouponCode = errors.New("coupon code already exists")
	ErrCouponUsed          = errors.New("coupon is used")
	ErrSizeUnsupported     = errors.New("database size is not available for this driver")
)
