package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/raihanmz/portfolio-backend/internal/api/middleware"
	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Admin, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func newAuthRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := middleware.NewSessionManager("test-secret", time.Hour)
	h := NewAuthHandler(svc, sessions)
	r := gin.New()
	r.POST("/api/admin/auth", h.Login)
	r.DELETE("/api/admin/auth", h.Logout)
	return r
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthLogin_SetsSessionCookie(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "admin@example.com", "s3cret").
		Return(&models.Admin{ID: "admin-1", Email: "admin@example.com", Name: "Admin"}, nil)

	r := newAuthRouter(svc)
	w := doJSON(r, http.MethodPost, "/api/admin/auth", gin.H{
		"email":    "admin@example.com",
		"password": "s3cret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin")

	c := sessionCookie(w.Result())
	if assert.NotNil(t, c) {
		assert.NotEmpty(t, c.Value)
		assert.True(t, c.HttpOnly)
	}
}

func TestAuthLogin_FailureSetsNoCookie(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return(nil, utils.E(utils.CodeUnauthorized, "AuthService.Login", "login failed", nil))

	r := newAuthRouter(svc)
	w := doJSON(r, http.MethodPost, "/api/admin/auth", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w.Result()))
}

func TestAuthLogin_MalformedBody(t *testing.T) {
	r := newAuthRouter(new(MockAuthService))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthLogout_ExpiresCookie(t *testing.T) {
	r := newAuthRouter(new(MockAuthService))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/auth", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	c := sessionCookie(w.Result())
	if assert.NotNil(t, c) {
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}
