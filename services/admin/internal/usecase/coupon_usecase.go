package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/repo/persistent"
)

const defaultCouponValidityMonths = 3

type CouponUseCase interface {
	ListCoupons(ctx context.Context, status entity.CouponStatus) ([]*entity.Coupon, error)
	CreateCoupon(ctx context.Context, input entity.NewCoupon) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

type couponUseCase struct {
	couponRepo persistent.CouponRepository
	logger     *logger.Logger
	now        func() time.Time
}

func NewCouponUseCase(couponRepo persistent.CouponRepository, logger *logger.Logger) CouponUseCase {
	return &couponUseCase{
		couponRepo: couponRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// ListCoupons returns coupons newest first with their badge filled in. An
// empty status returns all of them.
func (uc *couponUseCase) ListCoupons(ctx context.Context, status entity.CouponStatus) ([]*entity.Coupon, error) {
	switch status {
	case "", entity.CouponAvailable, entity.CouponUsed, entity.CouponExpired:
	default:
		return nil, ErrInvalidCouponStatus
	}

	coupons, err := uc.couponRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	filtered := make([]*entity.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		coupon.Status = coupon.StatusAt(now)
		if status == "" || coupon.Status == status {
			filtered = append(filtered, coupon)
		}
	}
	return filtered, nil
}

func (uc *couponUseCase) CreateCoupon(ctx context.Context, input entity.NewCoupon) (*entity.Coupon, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, ErrCouponCodeRequired
	}

	months := input.DurationMonths
	if months == 0 {
		months = 1
	}
	if months < 1 {
		return nil, ErrInvalidCouponDuration
	}

	now := uc.now()
	expiresAt := now.AddDate(0, defaultCouponValidityMonths, 0)
	if input.ExpiresAt != nil {
		expiresAt = *input.ExpiresAt
	}

	exists, err := uc.couponRepo.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCouponCodeTaken
	}

	coupon := &entity.Coupon{
		Code:           code,
		DurationMonths: months,
		ExpiresAt:      expiresAt,
	}
	if input.CreatedBy != "" {
		createdBy := input.CreatedBy
		coupon.CreatedBy = &createdBy
	}

	if err := uc.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, persistent.ErrDuplicateCouponCode) {
			return nil, ErrCouponCodeTaken
		}
		return nil, err
	}

	coupon.Status = coupon.StatusAt(now)
	uc.logger.Info("Coupon %s created for %d months", coupon.Code, coupon.DurationMonths)
	return coupon, nil
}

func (uc *couponUseCase) DeleteCoupon(ctx context.Context, id string) error {
	err := uc.couponRepo.DeleteUnused(ctx, id)
	switch {
	case err == nil:
		uc.logger.Info("Coupon %s deleted", id)
		return nil
	case errors.Is(err, persistent.ErrCouponUsed):
		return ErrCouponUsed
	case errors.Is(err, persistent.ErrNotFound):
		return ErrCouponNotFound
	default:
		return err
	}
}
