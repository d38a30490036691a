package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /api/upload (multipart field "file")
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "file wajib diunggah", gin.H{"field": "file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "file tidak dapat dibaca", gin.H{"field": "file"})
		return
	}
	defer f.Close()

	url, err := h.Uploads.Save(c.Request.Context(), fh.Filename, f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
