package persistent

import (
	"context"
	"errors"

	"pilates-club/services/catalog/internal/entity"
	"pilates-club/services/catalog/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type CatalogRepository interface {
	ListVisible(ctx context.Context, ascending bool, category string) ([]*entity.Content, error)
	Categories(ctx context.Context) ([]string, error)
	GetVisibleByKey(ctx context.Context, videoKey string) (*entity.Content, error)
	UpdateDuration(ctx context.Context, id, duration, formatted string) error
	CreateWatchLog(ctx context.Context, log *entity.WatchLog) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListVisible(ctx context.Context, ascending bool, category string) ([]*entity.Content, error) {
	order := "created_at DESC"
	if ascending {
		order = "created_at ASC"
	}

	query := r.db.WithContext(ctx).Where("visible = ?", true).Order(order)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var contentModels []model.ContentModel
	if err := query.Find(&contentModels).Error; err != nil {
		return nil, err
	}

	contents := make([]*entity.Content, len(contentModels))
	for i := range contentModels {
		contents[i] = ToContentEntity(&contentModels[i])
	}
	return contents, nil
}

func (r *catalogRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("visible = ? AND category IS NOT NULL AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) GetVisibleByKey(ctx context.Context, videoKey string) (*entity.Content, error) {
	var contentModel model.ContentModel
	err := r.db.WithContext(ctx).
		Where("video_key = ? AND visible = ?", videoKey, true).
		First(&contentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *catalogRepository) UpdateDuration(ctx context.Context, id, duration, formatted string) error {
	return r.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"duration":           duration,
			"formatted_duration": formatted,
		}).Error
}

func (r *catalogRepository) CreateWatchLog(ctx context.Context, log *entity.WatchLog) error {
	return r.db.WithContext(ctx).Create(ToWatchLogModel(log)).Error
}
