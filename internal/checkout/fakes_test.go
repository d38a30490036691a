package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)

func fixedClock() time.Time { return testNow }

var bromo = models.Trip{
	ID:       "bromo-sunrise",
	Title:    "Bromo Sunrise",
	Location: "East Java",
	Badge:    models.BadgeOpenTrip,
	Price:    "IDR 1.2M",
	ImageURL: "/images/bromo.jpg",
}

var rinjani = models.Trip{
	ID:       "rinjani-private",
	Title:    "Rinjani Private Summit",
	Location: "Lombok",
	Badge:    models.BadgePrivateTrip,
	Price:    "IDR 2,500,000",
}

type fakeTrips map[string]models.Trip

func (f fakeTrips) GetTrip(_ context.Context, id string) (models.Trip, error) {
	t, ok := f[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", ID: id}
	}
	return t, nil
}

type fakeBanks struct {
	accounts []models.BankAccount
	err      error
}

func (f fakeBanks) ActiveBankAccounts(context.Context) ([]models.BankAccount, error) {
	return f.accounts, f.err
}

type fakeUploader struct {
	url string
	err error
}

func (f fakeUploader) Upload(context.Context, ProofFile) (string, error) {
	return f.url, f.err
}

// fakeBookings records create requests; block, when set, holds each call
// until it is closed.
type fakeBookings struct {
	mu      sync.Mutex
	reqs    []models.CreateBookingRequest
	err     error
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeBookings) CreateBooking(_ context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return models.Booking{}, f.err
	}
	return models.Booking{
		ID:                "BKG-1760500000000-AB12C",
		TripID:            req.TripID,
		CustomerName:      req.CustomerName,
		Date:              req.Date,
		Guests:            req.Guests,
		TotalPrice:        req.TotalPrice,
		PricePerPax:       req.PricePerPax,
		Participants:      req.Participants,
		Status:            domain.BookingStatus(req.Status),
		PaymentStatus:     domain.PaymentStatus(req.PaymentStatus),
		PaymentMethod:     req.PaymentMethod,
		ProofOfPaymentURL: req.ProofOfPaymentURL,
		CreatedAt:         testNow,
	}, nil
}

func (f *fakeBookings) requests() []models.CreateBookingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CreateBookingRequest(nil), f.reqs...)
}

var errBackend = errors.New("connection refused")

var mainBooker = models.Participant{
	FullName:              "Dewi Lestari",
	IDNumber:              "3201010101010001",
	Phone:                 "081234567890",
	Email:                 "dewi@example.com",
	EmergencyContactName:  "Budi",
	EmergencyContactPhone: "081200000000",
}

var secondGuest = models.Participant{
	FullName: "Andi Wijaya",
	IDNumber: "3201010101010002",
	Phone:    "081298765432",
}

func newTestWizard(t *testing.T, trip models.Trip) (*Wizard, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	w := NewWizard(NewStore(storage), WithClock(fixedClock))
	_, err := w.LoadTrip(context.Background(), fakeTrips{trip.ID: trip}, trip.ID)
	require.NoError(t, err)
	return w, storage
}

// reviewReadyWizard walks the bromo trip through steps 1 and 2 with two guests.
func reviewReadyWizard(t *testing.T) (*Wizard, *MemoryStorage) {
	t.Helper()
	w, storage := newTestWizard(t, bromo)
	require.NoError(t, w.SelectSlot("slot-1"))
	require.NoError(t, w.SetParticipantCount(2))
	step, err := w.CompleteSlotStep()
	require.NoError(t, err)
	require.Equal(t, StepDetails, step)

	form, err := w.BeginDetails()
	require.NoError(t, err)
	form.MainBooker = mainBooker
	require.NoError(t, form.SetSameAsMainBooker(0, true))
	for _, f := range []struct {
		field Field
		value string
	}{
		{FieldFullName, secondGuest.FullName},
		{FieldIDNumber, secondGuest.IDNumber},
		{FieldPhone, secondGuest.Phone},
	} {
		require.NoError(t, form.SetParticipantField(1, f.field, f.value))
	}
	step, err = w.CompleteDetails(form)
	require.NoError(t, err)
	require.Equal(t, StepReview, step)
	return w, storage
}
