package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(m *SessionManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/profile", m.Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetString("admin_id")})
	})
	return r
}

func TestAuth_MissingCookie(t *testing.T) {
	r := newGuardedRouter(NewSessionManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidSession(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	r := newGuardedRouter(m)

	token, err := m.Issue("admin-1", "admin@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin-1")
}

func TestAuth_TokenSignedWithOtherSecret(t *testing.T) {
	r := newGuardedRouter(NewSessionManager("test-secret", time.Hour))

	other := NewSessionManager("other-secret", time.Hour)
	token, err := other.Issue("admin-1", "admin@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredSession(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	r := newGuardedRouter(m)

	expired := &SessionManager{secret: []byte("test-secret"), ttl: -time.Minute}
	token, err := expired.Issue("admin-1", "admin@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
