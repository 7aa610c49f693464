package persistent

import (
	"context"
	"errors"

	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/model"

	"gorm.io/gorm"
)

type CouponRepository interface {
	GetUnusedByCode(ctx context.Context, code string) (*entity.Coupon, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetUnusedByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponModel model.CouponModel
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_used = ?", code, false).
		First(&couponModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCouponEntity(&couponModel), nil
}
