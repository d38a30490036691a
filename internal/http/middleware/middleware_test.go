package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Mpictdev01/adventure-hub/internal/services"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

type stubParser map[string]services.Claims

func (s stubParser) ParseToken(raw string) (services.Claims, error) {
	c, ok := s[raw]
	if !ok {
		return services.Claims{}, errors.New("bad token")
	}
	return c, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	parser := stubParser{
		"admin-token": {Subject: "ops", Role: "admin"},
		"staff-token": {Subject: "kasir", Role: "staff"},
	}
	r.GET("/admin", BearerAuth(parser), RequireRoles("admin"), func(c *gin.Context) {
		c.String(http.StatusOK, Subject(c))
	})
	r.GET("/rid", func(c *gin.Context) {
		c.String(http.StatusOK, utils.RequestIDFrom(c.Request.Context()))
	})
	return r
}

func TestAdminGuard(t *testing.T) {
	r := newEngine()
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer staff-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "ops", rec.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rid", nil))
	assert.Len(t, rec.Body.String(), 36)
	assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Request-ID"))
}
