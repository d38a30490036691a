package services

import (
	"database/sql"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/events"
	"github.com/Mpictdev01/adventure-hub/internal/repositories"
)

// Deps groups every service the HTTP layer needs.
type Deps struct {
	Bookings       BookingService
	Reconciliation ReconciliationService
	Catalog        CatalogService
	Uploads        UploadService
	Invoices       InvoiceService
	Auth           AuthService
}

// NewDeps wires the services onto MySQL repositories.
func NewDeps(db *sql.DB, env intconfig.Env, pub events.Publisher) Deps {
	if pub == nil {
		pub = events.Nop{}
	}
	bookings := repositories.BookingRepository{DB: db}
	return Deps{
		Bookings:       BookingService{Repo: bookings, Events: pub},
		Reconciliation: ReconciliationService{Repo: bookings, Events: pub},
		Catalog: CatalogService{
			Trips: repositories.TripRepository{DB: db},
			Banks: repositories.BankAccountRepository{DB: db},
		},
		Uploads:  UploadService{Dir: env.UploadDir, BaseURL: env.PublicBaseURL},
		Invoices: InvoiceService{Repo: bookings},
		Auth: AuthService{
			Users:  repositories.AdminUserRepository{DB: db},
			Secret: []byte(env.JWTSecret),
			TTL:    env.AdminTokenTTL,
		},
	}
}
