package persistent

import (
	"context"
	"errors"
	"time"

	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/model"

	"gorm.io/gorm"
)

type MemberRepository interface {
	List(ctx context.Context, status entity.MemberStatus, offset, limit int) ([]*entity.Member, int64, error)
	CountByStatus(ctx context.Context, status entity.MemberStatus) (int64, error)
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, member *entity.Member) error
	// UpdateStatus sets status and, when expiredAt is non-nil, expired_at.
	UpdateStatus(ctx context.Context, id string, status entity.MemberStatus, expiredAt *time.Time) error
	// BulkUpdateStatus moves every id to status in one statement. When
	// pendingExpiredAt is set, the pending rows among ids get that expiration
	// first, inside the same transaction.
	BulkUpdateStatus(ctx context.Context, ids []string, status entity.MemberStatus, pendingExpiredAt *time.Time) (int64, error)
	UpdateExpiration(ctx context.Context, id string, expiredAt *time.Time) error
	// ExpireOverdue flips active members whose expired_at is before now.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) List(ctx context.Context, status entity.MemberStatus, offset, limit int) ([]*entity.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.MemberModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var memberModels []model.MemberModel
	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&memberModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToMemberEntities(memberModels), total, nil
}

func (r *memberRepository) CountByStatus(ctx context.Context, status entity.MemberStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
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

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberModel := ToMemberModel(member)
	if err := r.db.WithContext(ctx).Create(memberModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}

	*member = *ToMemberEntity(memberModel)
	return nil
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus, expiredAt *time.Time) error {
	updates := map[string]interface{}{"status": string(status)}
	if expiredAt != nil {
		updates["expired_at"] = *expiredAt
	}

	return r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *memberRepository) BulkUpdateStatus(ctx context.Context, ids []string, status entity.MemberStatus, pendingExpiredAt *time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if pendingExpiredAt != nil {
			err := tx.Model(&model.MemberModel{}).
				Where("id IN ? AND status = ?", ids, string(entity.StatusPending)).
				Update("expired_at", *pendingExpiredAt).Error
			if err != nil {
				return err
			}
		}

		result := tx.Model(&model.MemberModel{}).
			Where("id IN ?", ids).
			Update("status", string(status))
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *memberRepository) UpdateExpiration(ctx context.Context, id string, expiredAt *time.Time) error {
	return r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("id = ?", id).
		Update("expired_at", expiredAt).Error
}

func (r *memberRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("status = ? AND expired_at IS NOT NULL AND expired_at < ?", string(entity.StatusActive), now).
		Update("status", string(entity.StatusExpired))
	return result.RowsAffected, result.Error
}
