package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/service"
)

func newAuthRouter(t *testing.T, tokens service.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authed := router.Group("/", RequireAuth(tokens, zap.NewNop()))
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(int64),
			"name":    c.MustGet(ContextName).(string),
			"role":    c.MustGet(ContextRole).(string),
		})
	})
	authed.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	router := newAuthRouter(t, tokens)

	if w := doRequest(router, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthGarbledHeader(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	router := newAuthRouter(t, tokens)

	for _, header := range []string{
		"Bearer",
		"Basic abc123",
		"Bearer not a token",
		"token-with-no-scheme",
	} {
		if w := doRequest(router, "/me", header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q status = %d, want %d", header, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	router := newAuthRouter(t, tokens)

	other := service.NewTokenService([]byte("different-secret"), time.Hour)
	token, err := other.Issue(1, models.RoleUser, "Alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if w := doRequest(router, "/me", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong-secret token status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	router := newAuthRouter(t, tokens)

	expired := service.NewTokenService([]byte("test-secret"), -time.Minute)
	token, err := expired.Issue(1, models.RoleUser, "Alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	w := doRequest(router, "/me", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	router := newAuthRouter(t, tokens)

	token, err := tokens.Issue(7, models.RoleUser, "Alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	w := doRequest(router, "/me", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireAdminGating(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	router := newAuthRouter(t, tokens)

	userToken, err := tokens.Issue(1, models.RoleUser, "Alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	adminToken, err := tokens.Issue(2, models.RoleAdmin, "Root")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if w := doRequest(router, "/admin", "Bearer "+userToken); w.Code != http.StatusForbidden {
		t.Errorf("user token on admin route status = %d, want %d", w.Code, http.StatusForbidden)
	}
	if w := doRequest(router, "/admin", "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin token on admin route status = %d, want %d", w.Code, http.StatusOK)
	}
}
