package http

import (
	"net/http"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase  usecase.SettingsUseCase
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase, dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase:  settingsUseCase,
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

type ApprovalSettingsRequest struct {
	AutoApproveSignup       bool `json:"auto_approve_signup"`
	DefaultExpirationMonths int  `json:"default_expiration_months" example:"3"`
}

type GuideResponse struct {
	Sections []entity.GuideSection `json:"sections"`
}

// GetApprovalSettings godoc
// @Summary      Approval settings
// @Description  Current signup approval mode, default expiration and pending count
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.ApprovalSettings
// @Router       /admin/approval-settings [get]
func (h *SettingsHandler) GetApprovalSettings(c *gin.Context) {
	settings, err := h.settingsUseCase.GetApprovalSettings(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateApprovalSettings godoc
// @Summary      Save approval settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  ApprovalSettingsRequest  true  "Settings"
// @Success      200  {object}  entity.ApprovalSettings
// @Failure      400  {object}  map[string]string
// @Router       /admin/approval-settings [put]
func (h *SettingsHandler) UpdateApprovalSettings(c *gin.Context) {
	var req ApprovalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	settings, err := h.settingsUseCase.UpdateApprovalSettings(c.Request.Context(), entity.Settings{
		AutoApproveSignup:       req.AutoApproveSignup,
		DefaultExpirationMonths: req.DefaultExpirationMonths,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Dashboard godoc
// @Summary      Dashboard
// @Description  Member, content, watch and coupon counts with storage usage
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Dashboard
// @Router       /admin/dashboard [get]
func (h *SettingsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboardUseCase.GetDashboard(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Guide godoc
// @Summary      Operator guide
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  GuideResponse
// @Router       /admin/guide [get]
func (h *SettingsHandler) Guide(c *gin.Context) {
	c.JSON(http.StatusOK, GuideResponse{Sections: usecase.Guide()})
}
