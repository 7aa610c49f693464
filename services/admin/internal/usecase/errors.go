package usecase

import "errors"

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrInvalidStatus        = errors.New("invalid member status")
	ErrNoMembersSelected    = errors.New("select at least one member")
	ErrMemberFieldsRequired = errors.New("name, email and PIN are required")
	ErrInvalidPIN           = errors.New("PIN must be 6 digits")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrExpirationRequired   = errors.New("expiration date or months is required")
	ErrInvalidMonths        = errors.New("months must be between 1 and 120")
	ErrNotPending           = errors.New("member is not pending approval")

	ErrContentNotFound       = errors.New("content not found")
	ErrContentFieldsRequired = errors.New("title and YouTube URL are required")
	ErrInvalidYoutubeURL     = errors.New("invalid YouTube URL")
	ErrInvalidVideoKey       = errors.New("video key may only contain letters, digits, - and _")
	ErrVideoKeyTaken         = errors.New("video key is already in use")
	ErrNoContentsSelected    = errors.New("select at least one content")

	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponCodeRequired    = errors.New("coupon code is required")
	ErrInvalidCouponDuration = errors.New("duration must be at least 1 month")
	ErrCouponCodeTaken       = errors.New("coupon code already exists")
	ErrCouponUsed            = errors.New("used coupons cannot be deleted")
	ErrInvalidCouponStatus   = errors.New("status must be available, used or expired")
)
