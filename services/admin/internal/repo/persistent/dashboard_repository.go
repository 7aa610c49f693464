package persistent

import (
	"context"
	"time"

	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	MemberCounts(ctx context.Context) (*entity.MemberCounts, error)
	ContentCounts(ctx context.Context) (*entity.ContentCounts, error)
	WatchCounts(ctx context.Context) (*entity.WatchCounts, error)
	CouponCounts(ctx context.Context, now time.Time) (*entity.CouponCounts, error)
	TopContents(ctx context.Context, limit int) ([]*entity.TopContent, error)
	// DatabaseSize reports the on-disk size of the current database, or
	// ErrSizeUnsupported when the driver has no way to ask.
	DatabaseSize(ctx context.Context) (int64, error)
	// RowCount totals the rows of every table, for size estimates.
	RowCount(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *dashboardRepository) MemberCounts(ctx context.Context) (*entity.MemberCounts, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&model.MemberModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &entity.MemberCounts{}
	for _, row := range rows {
		counts.Total += row.Count
		switch entity.MemberStatus(row.Status) {
		case entity.StatusActive:
			counts.Active = row.Count
		case entity.StatusPending:
			counts.Pending = row.Count
		case entity.StatusExpired:
			counts.Expired = row.Count
		case entity.StatusCancelled:
			counts.Cancelled = row.Count
		}
	}
	return counts, nil
}

func (r *dashboardRepository) ContentCounts(ctx context.Context) (*entity.ContentCounts, error) {
	counts := &entity.ContentCounts{}
	if err := r.db.WithContext(ctx).Model(&model.ContentModel{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.ContentModel{}).Where("visible = ?", true).Count(&counts.Visible).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *dashboardRepository) WatchCounts(ctx context.Context) (*entity.WatchCounts, error) {
	var row struct {
		Total          int64
		UniqueViewers  int64
		UniqueContents int64
	}
	err := r.db.WithContext(ctx).Model(&model.WatchLogModel{}).
		Select("COUNT(*) AS total, COUNT(DISTINCT member_id) AS unique_viewers, COUNT(DISTINCT content_id) AS unique_contents").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &entity.WatchCounts{
		Total:          row.Total,
		UniqueViewers:  row.UniqueViewers,
		UniqueContents: row.UniqueContents,
	}, nil
}

func (r *dashboardRepository) CouponCounts(ctx context.Context, now time.Time) (*entity.CouponCounts, error) {
	counts := &entity.CouponCounts{}
	if err := r.db.WithContext(ctx).Model(&model.CouponModel{}).Where("is_used = ?", true).Count(&counts.Used).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.CouponModel{}).Where("is_used = ? AND expires_at >= ?", false, now).Count(&counts.Available).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *dashboardRepository) TopContents(ctx context.Context, limit int) ([]*entity.TopContent, error) {
	var top []*entity.TopContent
	err := r.db.WithContext(ctx).Table("watch_logs").
		Select("contents.id AS content_id, contents.title AS title, contents.video_key AS video_key, COUNT(watch_logs.id) AS watch_count").
		Joins("JOIN contents ON contents.id = watch_logs.content_id").
		Group("contents.id, contents.title, contents.video_key").
		Order("watch_count DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []*entity.TopContent{}
	}
	return top, nil
}

func (r *dashboardRepository) DatabaseSize(ctx context.Context) (int64, error) {
	var size int64
	var err error

	switch r.db.Dialector.Name() {
	case "postgres":
		err = r.db.WithContext(ctx).Raw("SELECT pg_database_size(current_database())").Scan(&size).Error
	case "mysql":
		err = r.db.WithContext(ctx).
			Raw("SELECT COALESCE(SUM(data_length + index_length), 0) FROM information_schema.tables WHERE table_schema = DATABASE()").
			Scan(&size).Error
	default:
		return 0, ErrSizeUnsupported
	}
	if err != nil {
		return 0, err
	}
	return size, nil
}

func (r *dashboardRepository) RowCount(ctx context.Context) (int64, error) {
	var total int64
	for _, m := range []interface{}{
		&model.MemberModel{},
		&model.ContentModel{},
		&model.CouponModel{},
		&model.WatchLogModel{},
		&model.SettingsModel{},
	} {
		var count int64
		if err := r.db.WithContext(ctx).Model(m).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
