package http

import (
	"net/http"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/middleware"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
	logger        *logger.Logger
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase, logger *logger.Logger) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
		logger:        logger,
	}
}

type CreateCouponRequest struct {
	Code           string `json:"code" example:"SPRING25"`
	DurationMonths int    `json:"duration_months" example:"3"`
	ExpiresAt      string `json:"expires_at" example:"2025-06-30"`
}

type CouponsResponse struct {
	Coupons []*entity.Coupon `json:"coupons"`
}

// ListCoupons godoc
// @Summary      List coupons
// @Description  Newest first with a computed status badge
// @Tags         coupons
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "available, used or expired"
// @Success      200  {object}  CouponsResponse
// @Failure      400  {object}  map[string]string
// @Router       /admin/coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.couponUseCase.ListCoupons(c.Request.Context(), entity.CouponStatus(c.Query("status")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, CouponsResponse{Coupons: coupons})
}

// CreateCoupon godoc
// @Summary      Issue coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  CreateCouponRequest  true  "Coupon data"
// @Success      201  {object}  entity.Coupon
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	expiresAt, err := parseDate(req.ExpiresAt)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	coupon, err := h.couponUseCase.CreateCoupon(c.Request.Context(), entity.NewCoupon{
		Code:           req.Code,
		DurationMonths: req.DurationMonths,
		ExpiresAt:      expiresAt,
		CreatedBy:      c.GetString(middleware.ContextUserID),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

// DeleteCoupon godoc
// @Summary      Delete unused coupon
// @Tags         coupons
// @Security     BearerAuth
// @Param        id  path  string  true  "Coupon ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.couponUseCase.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
