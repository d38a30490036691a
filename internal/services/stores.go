package services

import (
	"context"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

// BookingStore is satisfied by repositories.BookingRepository.
type BookingStore interface {
	Create(ctx context.Context, b models.Booking) error
	GetByID(ctx context.Context, id string) (models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	UpdateReconciliation(ctx context.Context, id string, rec domain.Reconciliation, expectedVersion *int64) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TripStore interface {
	GetByID(ctx context.Context, id string) (models.Trip, error)
}

type BankAccountStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.BankAccount, error)
}

type AdminUserStore interface {
	GetByUsername(ctx context.Context, username string) (models.AdminUser, error)
}
