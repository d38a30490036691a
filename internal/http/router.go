package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/http/handlers"
	"github.com/Mpictdev01/adventure-hub/internal/http/middleware"
	"github.com/Mpictdev01/adventure-hub/internal/services"
)

func NewRouter(env intconfig.Env, h *handlers.Handler, tokens middleware.TokenParser) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	if env.UploadDir != "" {
		r.Static("/uploads", env.UploadDir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/trips/:id", h.GetTrip)
		api.GET("/bank-accounts", h.GetBankAccounts)
		api.POST("/upload", h.Upload)
		api.POST("/auth/login", h.Login)

		// Checkout + track booking
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)

		// Back office
		admin := api.Group("", middleware.BearerAuth(tokens), middleware.RequireRoles(services.RoleAdmin))
		admin.GET("/bookings", h.ListBookings)
		admin.PUT("/bookings/:id", h.ReconcileBooking)
		admin.DELETE("/bookings/:id", h.DeleteBooking)
		admin.GET("/bookings/:id/invoice", h.GetBookingInvoice)
	}

	return r
}
