package usecase

import (
	"context"
	"time"

	"pilates-club/pkg/s3"
	"pilates-club/pkg/youtube"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) List(ctx context.Context, status entity.MemberStatus, offset, limit int) ([]*entity.Member, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepository) CountByStatus(ctx context.Context, status entity.MemberStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) Create(ctx context.Context, member *entity.Member) error {
	args := m.Called(ctx, member)
	if args.Error(0) == nil && member.ID == "" {
		member.ID = "member-new"
	}
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus, expiredAt *time.Time) error {
	args := m.Called(ctx, id, status, expiredAt)
	return args.Error(0)
}

func (m *MockMemberRepository) BulkUpdateStatus(ctx context.Context, ids []string, status entity.MemberStatus, pendingExpiredAt *time.Time) (int64, error) {
	args := m.Called(ctx, ids, status, pendingExpiredAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) UpdateExpiration(ctx context.Context, id string, expiredAt *time.Time) error {
	args := m.Called(ctx, id, expiredAt)
	return args.Error(0)
}

func (m *MockMemberRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.MemberRepository = (*MockMemberRepository)(nil)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetLatest(ctx context.Context) (*entity.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settings), args.Error(1)
}

var _ persistent.SettingsRepository = (*MockSettingsRepository)(nil)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) List(ctx context.Context, visible *bool, offset, limit int) ([]*entity.Content, int64, error) {
	args := m.Called(ctx, visible, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id string) (*entity.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) KeyExists(ctx context.Context, videoKey string) (bool, error) {
	args := m.Called(ctx, videoKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) KeyUsedByOther(ctx context.Context, videoKey, id string) (bool, error) {
	args := m.Called(ctx, videoKey, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) Create(ctx context.Context, content *entity.Content) error {
	args := m.Called(ctx, content)
	if args.Error(0) == nil && content.ID == "" {
		content.ID = "content-new"
	}
	return args.Error(0)
}

func (m *MockContentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Content, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) BulkSetVisibility(ctx context.Context, ids []string, visible bool) (int64, error) {
	args := m.Called(ctx, ids, visible)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ContentRepository = (*MockContentRepository)(nil)

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	args := m.Called(ctx, coupon)
	if args.Error(0) == nil && coupon.ID == "" {
		coupon.ID = "coupon-new"
	}
	return args.Error(0)
}

func (m *MockCouponRepository) DeleteUnused(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.CouponRepository = (*MockCouponRepository)(nil)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) MemberCounts(ctx context.Context) (*entity.MemberCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MemberCounts), args.Error(1)
}

func (m *MockDashboardRepository) ContentCounts(ctx context.Context) (*entity.ContentCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentCounts), args.Error(1)
}

func (m *MockDashboardRepository) WatchCounts(ctx context.Context) (*entity.WatchCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WatchCounts), args.Error(1)
}

func (m *MockDashboardRepository) CouponCounts(ctx context.Context, now time.Time) (*entity.CouponCounts, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CouponCounts), args.Error(1)
}

func (m *MockDashboardRepository) TopContents(ctx context.Context, limit int) ([]*entity.TopContent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TopContent), args.Error(1)
}

func (m *MockDashboardRepository) DatabaseSize(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) RowCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.DashboardRepository = (*MockDashboardRepository)(nil)

type MockVideoMetadata struct {
	mock.Mock
}

func (m *MockVideoMetadata) GetVideoDetails(ctx context.Context, id string) (*youtube.VideoDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.VideoDetails), args.Error(1)
}

type MockStorageUsage struct {
	mock.Mock
}

func (m *MockStorageUsage) BucketUsage(ctx context.Context) (*s3.Usage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.Usage), args.Error(1)
}

type MockWatchQueue struct {
	mock.Mock
}

func (m *MockWatchQueue) GetQueueLength() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
