package persistent

import (
	"context"
	"errors"

	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/model"

	"gorm.io/gorm"
)

type CouponRepository interface {
	List(ctx context.Context) ([]*entity.Coupon, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, coupon *entity.Coupon) error
	// DeleteUnused removes the coupon only while is_used is false.
	DeleteUnused(ctx context.Context, id string) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	var couponModels []model.CouponModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&couponModels).Error; err != nil {
		return nil, err
	}

	coupons := make([]*entity.Coupon, len(couponModels))
	for i := range couponModels {
		coupons[i] = ToCouponEntity(&couponModels[i])
	}
	return coupons, nil
}

func (r *couponRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CouponModel{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponModel := ToCouponModel(coupon)
	if err := r.db.WithContext(ctx).Create(couponModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCouponCode
		}
		return err
	}

	*coupon = *ToCouponEntity(couponModel)
	return nil
}

func (r *couponRepository) DeleteUnused(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND is_used = ?", id, false).
		Delete(&model.CouponModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CouponModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCouponUsed
	}
	return ErrNotFound
}
