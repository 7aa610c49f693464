package http

import (
	"context"
	"net/http"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/sweep"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Sweeper runs the expiration sweep on demand.
type Sweeper interface {
	TryRun(ctx context.Context) (*sweep.Result, error)
}

type MemberHandler struct {
	memberUseCase usecase.MemberUseCase
	sweeper       Sweeper
	logger        *logger.Logger
}

func NewMemberHandler(memberUseCase usecase.MemberUseCase, sweeper Sweeper, logger *logger.Logger) *MemberHandler {
	return &MemberHandler{
		memberUseCase: memberUseCase,
		sweeper:       sweeper,
		logger:        logger,
	}
}

type CreateMemberRequest struct {
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	BirthDate string `json:"birth_date" example:"1990-04-21"`
	Email     string `json:"email"`
	PIN       string `json:"pin"`
	ExpiredAt string `json:"expired_at" example:"2025-12-31"`
}

type StatusRequest struct {
	Status entity.MemberStatus `json:"status" example:"active"`
}

type BulkStatusRequest struct {
	IDs    []string            `json:"ids"`
	Status entity.MemberStatus `json:"status" example:"active"`
}

type ExpirationRequest struct {
	ExpiredAt string `json:"expired_at" example:"2025-12-31"`
	Months    int    `json:"months" example:"3"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

// ListMembers godoc
// @Summary      List members
// @Description  Members newest first, filtered by status tab
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        status     query  string  false  "all, active, pending, expired or cancelled"
// @Param        page       query  int     false  "Page number"  default(1)
// @Param        page_size  query  int     false  "Page size"    default(20)
// @Success      200  {object}  entity.MemberPage
// @Failure      400  {object}  map[string]string
// @Router       /admin/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	status := c.Query("status")
	if status == "all" {
		status = ""
	}

	page, err := h.memberUseCase.ListMembers(c.Request.Context(), entity.MemberFilter{
		Status:   entity.MemberStatus(status),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListPending godoc
// @Summary      List pending members
// @Description  Membership requests awaiting approval
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  entity.MemberPage
// @Router       /admin/pending [get]
func (h *MemberHandler) ListPending(c *gin.Context) {
	page, err := h.memberUseCase.ListMembers(c.Request.Context(), entity.MemberFilter{
		Status:   entity.StatusPending,
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// PendingCount godoc
// @Summary      Pending count
// @Description  Exact number of pending members for the navigation badge
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CountResponse
// @Router       /admin/members/pending-count [get]
func (h *MemberHandler) PendingCount(c *gin.Context) {
	count, err := h.memberUseCase.PendingCount(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// CreateMember godoc
// @Summary      Add member
// @Description  Create an active member directly
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMemberRequest true "Member data"
// @Success      201  {object}  entity.Member
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	expiredAt, err := parseDate(req.ExpiredAt)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	member, err := h.memberUseCase.CreateMember(c.Request.Context(), entity.NewMember{
		Name:      req.Name,
		Nickname:  req.Nickname,
		BirthDate: birthDate,
		Email:     req.Email,
		PIN:       req.PIN,
		ExpiredAt: expiredAt,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateStatus godoc
// @Summary      Change member status
// @Description  Activating a pending member also sets the default expiration
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string         true  "Member ID"
// @Param        request  body  StatusRequest  true  "Target status"
// @Success      200  {object}  entity.Member
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/members/{id}/status [put]
func (h *MemberHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	member, err := h.memberUseCase.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// BulkUpdateStatus godoc
// @Summary      Change status of many members
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  BulkStatusRequest  true  "Member IDs and target status"
// @Success      200  {object}  AffectedResponse
// @Failure      400  {object}  map[string]string
// @Router       /admin/members/bulk-status [post]
func (h *MemberHandler) BulkUpdateStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	affected, err := h.memberUseCase.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AffectedResponse{Affected: affected})
}

// UpdateExpiration godoc
// @Summary      Set member expiration
// @Description  Either an explicit date or a number of months from now
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string             true  "Member ID"
// @Param        request  body  ExpirationRequest  true  "Expiration"
// @Success      200  {object}  entity.Member
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/members/{id}/expiration [put]
func (h *MemberHandler) UpdateExpiration(c *gin.Context) {
	var req ExpirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	expiredAt, err := parseDate(req.ExpiredAt)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	member, err := h.memberUseCase.UpdateExpiration(c.Request.Context(), c.Param("id"), entity.ExpirationChange{
		ExpiredAt: expiredAt,
		Months:    req.Months,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// Approve godoc
// @Summary      Approve pending member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      200  {object}  entity.Member
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/pending/{id}/approve [post]
func (h *MemberHandler) Approve(c *gin.Context) {
	member, err := h.memberUseCase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// Reject godoc
// @Summary      Reject pending member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      200  {object}  entity.Member
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/pending/{id}/reject [post]
func (h *MemberHandler) Reject(c *gin.Context) {
	member, err := h.memberUseCase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// Sweep godoc
// @Summary      Run expiration sweep
// @Description  Expire active members whose expiration has passed, right now
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sweep.Result
// @Failure      409  {object}  map[string]string
// @Router       /admin/members/sweep [post]
func (h *MemberHandler) Sweep(c *gin.Context) {
	result, err := h.sweeper.TryRun(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
