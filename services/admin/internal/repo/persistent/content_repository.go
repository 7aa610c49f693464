package persistent

import (
	"context"
	"errors"

	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	List(ctx context.Context, visible *bool, offset, limit int) ([]*entity.Content, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Content, error)
	KeyExists(ctx context.Context, videoKey string) (bool, error)
	// KeyUsedByOther reports whether a content other than id holds videoKey.
	KeyUsedByOther(ctx context.Context, videoKey, id string) (bool, error)
	Create(ctx context.Context, content *entity.Content) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Content, error)
	Delete(ctx context.Context, id string) error
	// ToggleVisibility flips visible in place and returns the new value.
	ToggleVisibility(ctx context.Context, id string) (bool, error)
	BulkSetVisibility(ctx context.Context, ids []string, visible bool) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) List(ctx context.Context, visible *bool, offset, limit int) ([]*entity.Content, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ContentModel{})
	if visible != nil {
		query = query.Where("visible = ?", *visible)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contentModels []model.ContentModel
	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&contentModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToContentEntities(contentModels), total, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*entity.Content, error) {
	var contentModel model.ContentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) KeyExists(ctx context.Context, videoKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("video_key = ?", videoKey).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *contentRepository) KeyUsedByOther(ctx context.Context, videoKey, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("video_key = ? AND id <> ?", videoKey, id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	contentModel := ToContentModel(content)
	if err := r.db.WithContext(ctx).Create(contentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateVideoKey
		}
		return err
	}

	*content = *ToContentEntity(contentModel)
	return nil
}

func (r *contentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Content, error) {
	var contentModel model.ContentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&contentModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&contentModel).Updates(fields).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateVideoKey
		}
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contentRepository) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	var visible bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ContentModel{}).
			Where("id = ?", id).
			UpdateColumn("visible", gorm.Expr("NOT visible"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		var values []bool
		if err := tx.Model(&model.ContentModel{}).Where("id = ?", id).Pluck("visible", &values).Error; err != nil {
			return err
		}
		if len(values) == 0 {
			return ErrNotFound
		}
		visible = values[0]
		return nil
	})
	return visible, err
}

func (r *contentRepository) BulkSetVisibility(ctx context.Context, ids []string, visible bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("id IN ?", ids).
		UpdateColumn("visible", visible)
	return result.RowsAffected, result.Error
}
