package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/middleware"
	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, pin string) (*entity.Session, error) {
	args := m.Called(email, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockAuthUseCase) Register(ctx context.Context, reg entity.Registration) (*entity.RegistrationResult, error) {
	args := m.Called(reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RegistrationResult), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockAuthUseCase) GetMember(ctx context.Context, memberID string) (*entity.Member, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(w *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	msg, _ := response["error"].(string)
	return msg
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	session := &entity.Session{
		Member:  &entity.Member{ID: "member-1", Email: "kim@example.com", Status: entity.StatusActive},
		Token:   "signed-token",
		IsAdmin: false,
	}
	mockUseCase.On("Login", "kim@example.com", "123456").Return(session, nil)

	w := postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PIN: "123456"})

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "signed-token", response["token"])
	assert.Equal(t, false, response["is_admin"])
	mockUseCase.AssertExpectations(t)
}

func TestLogin_PastedPINIsNormalised(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "kim@example.com", "123456").Return(&entity.Session{Member: &entity.Member{}}, nil)

	w := postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PastedPIN: " 123-456 "})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PastedPIN: "1234567890"})
	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertNumberOfCalls(t, "Login", 2)

	w = postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PastedPIN: "12-34"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNumberOfCalls(t, "Login", 2)
}

func TestLogin_TypedPINMustBeSixDigits(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "kim@example.com", "123456").Return(&entity.Session{Member: &entity.Member{}}, nil)

	w := postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PIN: " 123456 "})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, pin := range []string{"1234567890", "123-456", "12345", ""} {
		w = postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PIN: pin})
		assert.Equal(t, http.StatusBadRequest, w.Code, "pin %q", pin)
		assert.Equal(t, "PIN must be 6 digits", errorMessage(w))
	}
	mockUseCase.AssertNumberOfCalls(t, "Login", 1)
}

func TestLogin_PINDigits(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "kim@example.com", "987654").Return(&entity.Session{Member: &entity.Member{}}, nil)

	w := postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PINDigits: []string{"9", "8", "7", "6", "5", "4"}})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PINDigits: []string{"9", "8", "x", "6", "5", "4"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PIN must be 6 digits", errorMessage(w))
	mockUseCase.AssertNumberOfCalls(t, "Login", 1)
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "validation", err: usecase.ErrEmailRequired, status: http.StatusBadRequest, expected: "email is required"},
		{name: "not found", err: usecase.ErrMemberNotFound, status: http.StatusNotFound, expected: "member not found"},
		{name: "mismatch", err: usecase.ErrPINMismatch, status: http.StatusUnauthorized, expected: "PIN does not match"},
		{name: "pending", err: usecase.ErrPendingApproval, status: http.StatusForbidden, expected: "membership approval is pending"},
		{name: "expired", err: &usecase.InactiveError{Status: entity.StatusExpired}, status: http.StatusForbidden, expected: "account is expired; contact an administrator"},
		{name: "backend", err: errors.New("connection refused"), status: http.StatusInternalServerError, expected: "Something went wrong, please try again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockAuthUseCase)
			handler := NewAuthHandler(mockUseCase, nil, logger.New())

			router := setupTestRouter()
			router.POST("/login", handler.Login)

			mockUseCase.On("Login", "kim@example.com", "123456").Return(nil, tt.err)

			w := postJSON(router, "/login", LoginRequest{Email: "kim@example.com", PIN: "123456"})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.expected, errorMessage(w))
		})
	}
}

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	birth := time.Date(1990, 4, 21, 0, 0, 0, 0, time.UTC)
	expected := entity.Registration{
		Name:       "Kim",
		Email:      "kim@example.com",
		BirthDate:  &birth,
		PIN:        "123456",
		PINConfirm: "123456",
		CouponCode: "SPRING",
	}
	result := &entity.RegistrationResult{Member: &entity.Member{ID: "member-1", Status: entity.StatusPending}}
	mockUseCase.On("Register", expected).Return(result, nil)

	w := postJSON(router, "/register", RegisterRequest{
		Name:       "Kim",
		Email:      "kim@example.com",
		BirthDate:  "1990-04-21",
		PIN:        "123456",
		PINConfirm: "123456",
		CouponCode: "SPRING",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRegister_BadBirthDate(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	w := postJSON(router, "/register", RegisterRequest{Name: "Kim", Email: "kim@example.com", BirthDate: "21/04/1990"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything)
}

func TestRegister_Conflicts(t *testing.T) {
	for _, err := range []error{usecase.ErrEmailTaken, usecase.ErrInvalidCoupon, usecase.ErrCouponExpired} {
		t.Run(err.Error(), func(t *testing.T) {
			mockUseCase := new(MockAuthUseCase)
			handler := NewAuthHandler(mockUseCase, nil, logger.New())

			router := setupTestRouter()
			router.POST("/register", handler.Register)

			mockUseCase.On("Register", mock.Anything).Return(nil, err)

			w := postJSON(router, "/register", RegisterRequest{Name: "Kim", Email: "kim@example.com", PIN: "123456", PINConfirm: "123456"})

			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Equal(t, err.Error(), errorMessage(w))
		})
	}
}

func TestLogout(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	router := setupTestRouter()
	router.POST("/logout", func(c *gin.Context) {
		c.Set(middleware.ContextTokenID, "token-1")
		c.Set(middleware.ContextTokenExp, exp)
		handler.Logout(c)
	})

	mockUseCase.On("Logout", "token-1", exp).Return(nil)

	w := postJSON(router, "/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestMe(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, []string{"kim@example.com"}, logger.New())

	router := setupTestRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "member-1")
		handler.Me(c)
	})

	mockUseCase.On("GetMember", "member-1").Return(&entity.Member{ID: "member-1", Email: "kim@example.com", Role: entity.RoleUser}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["is_admin"])
}

func TestMe_Unauthorized(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, nil, logger.New())

	router := setupTestRouter()
	router.GET("/me", handler.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoot_RedirectsToLogin(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthUseCase), nil, logger.New())

	router := setupTestRouter()
	router.GET("/", handler.Root)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
