package usecase

import "errors"

var (
	ErrContentNotFound = errors.New("content not found")
	ErrInvalidSort     = errors.New("sort must be newest or oldest")
	ErrVideoKeyMissing = errors.New("video key is required")
)
