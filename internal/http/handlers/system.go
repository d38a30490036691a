package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	intdb "github.com/Mpictdev01/adventure-hub/internal/db"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "adventure hub api berjalan"})
}

func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database belum terhubung", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "gagal ping database: "+err.Error(), nil)
		return
	}
	missing := intdb.MissingTables(ctx, h.DB)
	if len(missing) > 0 {
		respondError(c, http.StatusInternalServerError, "schema_incomplete", "tabel belum lengkap", gin.H{"missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "tables": intdb.Tables})
}
