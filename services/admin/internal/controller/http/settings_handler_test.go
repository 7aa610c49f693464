package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSettingsRouter(settings *MockSettingsUseCase, dashboard *MockDashboardUseCase, coupons *MockCouponUseCase) *gin.Engine {
	settingsHandler := NewSettingsHandler(settings, dashboard, logger.New())
	couponHandler := NewCouponHandler(coupons, logger.New())

	router := newTestRouter("admin-1")
	router.GET("/admin/approval-settings", settingsHandler.GetApprovalSettings)
	router.PUT("/admin/approval-settings", settingsHandler.UpdateApprovalSettings)
	router.GET("/admin/dashboard", settingsHandler.Dashboard)
	router.GET("/admin/guide", settingsHandler.Guide)
	router.GET("/admin/coupons", couponHandler.ListCoupons)
	router.POST("/admin/coupons", couponHandler.CreateCoupon)
	router.DELETE("/admin/coupons/:id", couponHandler.DeleteCoupon)
	return router
}

func TestGetApprovalSettings(t *testing.T) {
	settings := new(MockSettingsUseCase)
	router := setupSettingsRouter(settings, nil, nil)

	settings.On("GetApprovalSettings").Return(&entity.ApprovalSettings{
		Settings:     entity.Settings{DefaultExpirationMonths: 3},
		PendingCount: 2,
	}, nil)

	w := doRequest(router, "GET", "/admin/approval-settings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_count":2`)
	assert.Contains(t, w.Body.String(), `"auto_approve_signup":false`)
}

func TestUpdateApprovalSettings(t *testing.T) {
	settings := new(MockSettingsUseCase)
	router := setupSettingsRouter(settings, nil, nil)

	settings.On("UpdateApprovalSettings", entity.Settings{AutoApproveSignup: true, DefaultExpirationMonths: 6}).
		Return(&entity.ApprovalSettings{Settings: entity.Settings{AutoApproveSignup: true, DefaultExpirationMonths: 6}}, nil)
	settings.On("UpdateApprovalSettings", entity.Settings{DefaultExpirationMonths: 200}).
		Return(nil, usecase.ErrInvalidMonths)

	w := doRequest(router, "PUT", "/admin/approval-settings", ApprovalSettingsRequest{AutoApproveSignup: true, DefaultExpirationMonths: 6})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "PUT", "/admin/approval-settings", ApprovalSettingsRequest{DefaultExpirationMonths: 200})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "between 1 and 120")
}

func TestDashboard(t *testing.T) {
	dashboard := new(MockDashboardUseCase)
	router := setupSettingsRouter(nil, dashboard, nil)

	dashboard.On("GetDashboard").Return(&entity.Dashboard{
		Members:  entity.MemberCounts{Total: 3, Active: 2},
		Database: entity.Usage{Human: "8.0 MiB", Limit: usecase.DatabaseLimitLabel, Available: true},
	}, nil).Once()
	dashboard.On("GetDashboard").Return(nil, errors.New("timeout")).Once()

	w := doRequest(router, "GET", "/admin/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":2`)
	assert.Contains(t, w.Body.String(), "8.0 MiB")

	w = doRequest(router, "GET", "/admin/dashboard", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGuide(t *testing.T) {
	router := setupSettingsRouter(nil, nil, nil)

	w := doRequest(router, "GET", "/admin/guide", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/admin/approval-settings")
}

func TestListCoupons(t *testing.T) {
	coupons := new(MockCouponUseCase)
	router := setupSettingsRouter(nil, nil, coupons)

	coupons.On("ListCoupons", entity.CouponUsed).Return([]*entity.Coupon{{ID: "k1", Status: entity.CouponUsed}}, nil)
	coupons.On("ListCoupons", entity.CouponStatus("lost")).Return(nil, usecase.ErrInvalidCouponStatus)

	w := doRequest(router, "GET", "/admin/coupons?status=used", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"used"`)

	w = doRequest(router, "GET", "/admin/coupons?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCoupon_RecordsCreator(t *testing.T) {
	coupons := new(MockCouponUseCase)
	router := setupSettingsRouter(nil, nil, coupons)

	expiresAt := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	coupons.On("CreateCoupon", entity.NewCoupon{
		Code:           "SPRING",
		DurationMonths: 3,
		ExpiresAt:      &expiresAt,
		CreatedBy:      "admin-1",
	}).Return(&entity.Coupon{ID: "k1", Code: "SPRING"}, nil)

	w := doRequest(router, "POST", "/admin/coupons", CreateCouponRequest{Code: "SPRING", DurationMonths: 3, ExpiresAt: "2025-06-30"})

	assert.Equal(t, http.StatusCreated, w.Code)
	coupons.AssertExpectations(t)
}

func TestCreateCoupon_Duplicate(t *testing.T) {
	coupons := new(MockCouponUseCase)
	router := setupSettingsRouter(nil, nil, coupons)

	coupons.On("CreateCoupon", mock.Anything).Return(nil, usecase.ErrCouponCodeTaken)

	w := doRequest(router, "POST", "/admin/coupons", CreateCouponRequest{Code: "SPRING"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCoupon(t *testing.T) {
	coupons := new(MockCouponUseCase)
	router := setupSettingsRouter(nil, nil, coupons)

	coupons.On("DeleteCoupon", "k1").Return(usecase.ErrCouponUsed)
	coupons.On("DeleteCoupon", "k2").Return(nil)

	w := doRequest(router, "DELETE", "/admin/coupons/k1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "used coupons cannot be deleted")

	w = doRequest(router, "DELETE", "/admin/coupons/k2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
