package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"pilates-club/pkg/middleware"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/sweep"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockMemberUseCase struct {
	mock.Mock
}

func (m *MockMemberUseCase) ListMembers(ctx context.Context, filter entity.MemberFilter) (*entity.MemberPage, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MemberPage), args.Error(1)
}

func (m *MockMemberUseCase) PendingCount(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberUseCase) CreateMember(ctx context.Context, input entity.NewMember) (*entity.Member, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberUseCase) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) (*entity.Member, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberUseCase) BulkUpdateStatus(ctx context.Context, ids []string, status entity.MemberStatus) (int64, error) {
	args := m.Called(ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberUseCase) UpdateExpiration(ctx context.Context, id string, change entity.ExpirationChange) (*entity.Member, error) {
	args := m.Called(id, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberUseCase) Approve(ctx context.Context, id string) (*entity.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberUseCase) Reject(ctx context.Context, id string) (*entity.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberUseCase) ExpireOverdue(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.MemberUseCase = (*MockMemberUseCase)(nil)

type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) ListContents(ctx context.Context, filter entity.ContentFilter) (*entity.ContentPage, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentPage), args.Error(1)
}

func (m *MockContentUseCase) GetContent(ctx context.Context, id string) (*entity.Content, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentUseCase) CreateContent(ctx context.Context, input entity.ContentInput) (*entity.Content, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentUseCase) UpdateContent(ctx context.Context, id string, update entity.ContentUpdate) (*entity.Content, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentUseCase) DeleteContent(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *MockContentUseCase) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentUseCase) BulkSetVisibility(ctx context.Context, ids []string, visible bool) (int64, error) {
	args := m.Called(ids, visible)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentUseCase) GenerateKey() string {
	return m.Called().String(0)
}

func (m *MockContentUseCase) YouTubeInfo(ctx context.Context, url string) (*entity.YouTubeInfo, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.YouTubeInfo), args.Error(1)
}

var _ usecase.ContentUseCase = (*MockContentUseCase)(nil)

type MockCouponUseCase struct {
	mock.Mock
}

func (m *MockCouponUseCase) ListCoupons(ctx context.Context, status entity.CouponStatus) ([]*entity.Coupon, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Coupon), args.Error(1)
}

func (m *MockCouponUseCase) CreateCoupon(ctx context.Context, input entity.NewCoupon) (*entity.Coupon, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Coupon), args.Error(1)
}

func (m *MockCouponUseCase) DeleteCoupon(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

var _ usecase.CouponUseCase = (*MockCouponUseCase)(nil)

type MockSettingsUseCase struct {
	mock.Mock
}

func (m *MockSettingsUseCase) GetApprovalSettings(ctx context.Context) (*entity.ApprovalSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ApprovalSettings), args.Error(1)
}

func (m *MockSettingsUseCase) UpdateApprovalSettings(ctx context.Context, settings entity.Settings) (*entity.ApprovalSettings, error) {
	args := m.Called(settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ApprovalSettings), args.Error(1)
}

var _ usecase.SettingsUseCase = (*MockSettingsUseCase)(nil)

type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) GetDashboard(ctx context.Context) (*entity.Dashboard, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dashboard), args.Error(1)
}

var _ usecase.DashboardUseCase = (*MockDashboardUseCase)(nil)

type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) TryRun(ctx context.Context) (*sweep.Result, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sweep.Result), args.Error(1)
}

func newTestRouter(adminID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, adminID)
		c.Next()
	})
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}
