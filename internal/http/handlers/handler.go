package handlers

import (
	"context"
	"database/sql"
	"io"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/services"
)

// BookingService is satisfied by services.BookingService.
type BookingService interface {
	Create(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error)
	Get(ctx context.Context, id string) (models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type Reconciler interface {
	Apply(ctx context.Context, id string, req models.ReconcileRequest) (models.Booking, error)
}

type Catalog interface {
	GetTrip(ctx context.Context, id string) (models.Trip, error)
	BankAccounts(ctx context.Context, activeOnly bool) ([]models.BankAccount, error)
}

type Uploader interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

type InvoiceGenerator interface {
	Generate(ctx context.Context, bookingID string) ([]byte, string, error)
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, models.AdminUser, error)
}

// Handler carries the services behind every API route.
type Handler struct {
	Bookings   BookingService
	Reconciler Reconciler
	Catalog    Catalog
	Uploads    Uploader
	Invoices   InvoiceGenerator
	Auth       Authenticator
	DB         *sql.DB
}

// NewHandler wires the MySQL-backed services.
func NewHandler(db *sql.DB, deps services.Deps) *Handler {
	return &Handler{
		Bookings:   deps.Bookings,
		Reconciler: deps.Reconciliation,
		Catalog:    deps.Catalog,
		Uploads:    deps.Uploads,
		Invoices:   deps.Invoices,
		Auth:       deps.Auth,
		DB:         db,
	}
}
