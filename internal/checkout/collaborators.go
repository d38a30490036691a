package checkout

import (
	"context"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

// TripLookup fetches a catalog trip by id.
type TripLookup interface {
	GetTrip(ctx context.Context, id string) (models.Trip, error)
}

// BankAccountSource lists destination accounts that accept transfers.
type BankAccountSource interface {
	ActiveBankAccounts(ctx context.Context) ([]models.BankAccount, error)
}

// Uploader stores a proof image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file ProofFile) (string, error)
}

// BookingCreator persists the final booking and returns it with the server id.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error)
}

// BookingTracker is the read-only lookup behind "track booking".
type BookingTracker interface {
	GetBooking(ctx context.Context, id string) (models.Booking, error)
}
