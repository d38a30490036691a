package services

import (
	"context"
	"strings"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

// CatalogService serves the read-only trip and bank account lookups used by
// the checkout.
type CatalogService struct {
	Trips TripStore
	Banks BankAccountStore
}

func (s CatalogService) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "wajib diisi"}
	}
	return s.Trips.GetByID(ctx, id)
}

func (s CatalogService) BankAccounts(ctx context.Context, activeOnly bool) ([]models.BankAccount, error) {
	return s.Banks.List(ctx, activeOnly)
}
