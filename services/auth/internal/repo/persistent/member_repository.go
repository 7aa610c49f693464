package persistent

import (
	"context"
	"errors"
	"time"

	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/model"

	"gorm.io/gorm"
)

type MemberRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.Member, error)
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Activate(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	// Register inserts member and, when couponCode is set, redeems that
	// coupon in the same transaction.
	Register(ctx context.Context, member *entity.Member, couponCode string, now time.Time) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*entity.Member, error) {
	var memberModel model.MemberModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&memberModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToMemberEntity(&memberModel), nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	var memberModel model.MemberModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&memberModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToMemberEntity(&memberModel), nil
}

func (r *memberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.MemberModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *memberRepository) Activate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Update("status", string(entity.StatusActive))
	return result.Error
}

func (r *memberRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (r *memberRepository) Register(ctx context.Context, member *entity.Member, couponCode string, now time.Time) error {
	memberModel := ToMemberModel(member)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(memberModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}

		if couponCode == "" {
			return nil
		}

		result := tx.Model(&model.CouponModel{}).
			Where("code = ? AND is_used = ? AND expires_at >= ?", couponCode, false, now).
			Updates(map[string]interface{}{
				"is_used": true,
				"used_by": memberModel.ID,
				"used_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCouponUnavailable
		}
		return nil
	})
	if err != nil {
		return err
	}

	*member = *ToMemberEntity(memberModel)
	return nil
}
