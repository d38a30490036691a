package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.Catalog.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/bank-accounts?active=true
func (h *Handler) GetBankAccounts(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	accounts, err := h.Catalog.BankAccounts(c.Request.Context(), activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
