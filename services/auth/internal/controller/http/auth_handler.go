package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/middleware"
	"pilates-club/pkg/pinpad"
	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	adminEmails []string
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, adminEmails []string, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		adminEmails: adminEmails,
		logger:      logger,
	}
}

type LoginRequest struct {
	Email string `json:"email"`
	// PIN is typed and must be exactly six digits.
	PIN string `json:"pin"`
	// PastedPIN is raw clipboard text; its digits are spread across the pad.
	PastedPIN string `json:"pasted_pin,omitempty"`
	// PINDigits carries the six pad slots when the client submits them as entered.
	PINDigits []string `json:"pin_digits,omitempty"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	BirthDate  string `json:"birth_date" example:"1990-04-21"`
	Email      string `json:"email"`
	PIN        string `json:"pin"`
	PINConfirm string `json:"pin_confirm"`
	CouponCode string `json:"coupon_code"`
}

type MeResponse struct {
	User    *entity.Member `json:"user"`
	IsAdmin bool           `json:"is_admin"`
}

func (r LoginRequest) resolvePIN() (string, error) {
	switch {
	case len(r.PINDigits) > 0:
		pin, ok := pinpad.FromDigits(r.PINDigits)
		if !ok {
			return "", usecase.ErrInvalidPIN
		}
		return pin, nil
	case r.PastedPIN != "":
		pad := pinpad.New(r.Email)
		pad.Paste(r.PastedPIN)
		if !pad.Complete() {
			return "", usecase.ErrInvalidPIN
		}
		return pad.Value(), nil
	}

	pin := strings.TrimSpace(r.PIN)
	if !pinpad.Valid(pin) {
		return "", usecase.ErrInvalidPIN
	}
	return pin, nil
}

func (h *AuthHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmailRequired),
		errors.Is(err, usecase.ErrInvalidPIN),
		errors.Is(err, usecase.ErrRegistrationFieldsRequired),
		errors.Is(err, usecase.ErrPINConfirmMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPINMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPendingApproval),
		errors.Is(err, usecase.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrInvalidCoupon),
		errors.Is(err, usecase.ErrCouponExpired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

// Login godoc
// @Summary      Login member
// @Description  Authenticate with email and 6-digit PIN and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  entity.Session
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pin, err := req.resolvePIN()
	if err != nil {
		h.writeError(c, err)
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), req.Email, pin)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Register godoc
// @Summary      Register member
// @Description  Create a membership request, optionally redeeming a coupon
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  entity.RegistrationResult
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reg := entity.Registration{
		Name:       req.Name,
		Nickname:   req.Nickname,
		Email:      req.Email,
		PIN:        req.PIN,
		PINConfirm: req.PINConfirm,
		CouponCode: req.CouponCode,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "birth date must be YYYY-MM-DD"})
			return
		}
		reg.BirthDate = &birthDate
	}

	result, err := h.authUseCase.Register(c.Request.Context(), reg)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the current session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString(middleware.ContextTokenID)
	expiresAt := c.GetTime(middleware.ContextTokenExp)

	if err := h.authUseCase.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
		// the client drops its token either way
		h.logger.Warn("Logout for token %s was not recorded: %v", tokenID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary      Current member
// @Description  Get the member behind the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.authUseCase.GetMember(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		User:    member,
		IsAdmin: middleware.IsAdmin(string(member.Role), member.Email, h.adminEmails),
	})
}

// Root sends visitors of the bare domain to the login page.
func (h *AuthHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}
