package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/http/handlers"
	"github.com/Mpictdev01/adventure-hub/internal/http/handlers/mocks"
	"github.com/Mpictdev01/adventure-hub/internal/services"
)

type stubTokens struct{}

func (stubTokens) ParseToken(raw string) (services.Claims, error) {
	if raw == "admin-token" {
		return services.Claims{Subject: "ops", Role: services.RoleAdmin}, nil
	}
	return services.Claims{}, errors.New("bad token")
}

func TestRouterAdminRoutesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bookings := new(mocks.MockBookingService)
	bookings.On("List", mock.Anything).Return([]models.Booking{}, nil).Once()

	env := intconfig.Env{CORSAllowedOrigins: []string{"http://localhost:3000"}}
	r := NewRouter(env, &handlers.Handler{Bookings: bookings}, stubTokens{})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"health is public", http.MethodGet, "/api/health", "", http.StatusOK},
		{"list without token", http.MethodGet, "/api/bookings", "", http.StatusUnauthorized},
		{"reconcile without token", http.MethodPut, "/api/bookings/BKG-1", "", http.StatusUnauthorized},
		{"delete with bad token", http.MethodDelete, "/api/bookings/BKG-1", "nope", http.StatusUnauthorized},
		{"list as admin", http.MethodGet, "/api/bookings", "admin-token", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nowhere", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
	bookings.AssertExpectations(t)
}
